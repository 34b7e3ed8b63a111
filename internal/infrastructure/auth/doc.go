// Package auth implements password hashing with bcrypt and HS256 access tokens with golang-jwt.
package auth
