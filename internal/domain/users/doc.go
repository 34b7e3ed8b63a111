// Package users defines back-office accounts, their roles and the authentication contracts.
package users
