package category

import "context"

type CategoryService interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	ListCategories(ctx context.Context, department string) ([]CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateAssignee(ctx context.Context, req CreateAssigneeRequest) (AssigneeResponse, error)
	ListAssignees(ctx context.Context, department string) ([]AssigneeResponse, error)
	SetAssigneeActive(ctx context.Context, id string, active bool) (AssigneeResponse, error)
	DeleteAssignee(ctx context.Context, id string) error
}
