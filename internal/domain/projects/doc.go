// Package projects defines portfolio projects and their image galleries.
package projects
