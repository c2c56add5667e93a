package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists in this department")
	ErrAssigneeNotFound = errors.New("assignee not found")
	ErrAssigneeExists   = errors.New("employee is already an assignee")
)
