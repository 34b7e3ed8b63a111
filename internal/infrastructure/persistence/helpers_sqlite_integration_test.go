//go:build integration
// +build integration

package persistence

import "github.com/kagailawrence/modarflor/internal/domain/projects"

func projectsQuery(category, projectType string) *projects.ProjectQuery {
	q := projects.NewProjectQuery()
	q.Category = category
	q.Type = projectType
	return q
}
