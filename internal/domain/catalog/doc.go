// Package catalog defines the flooring services offered on the site and their feature bullets.
package catalog
