// Package models contains the gorm database models. They are kept apart from the domain
// entities so that tags and relations stay an infrastructure concern.
package models
