package category

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, c Category) (Category, error)
	GetByID(ctx context.Context, id string) (Category, error)
	List(ctx context.Context, department string) ([]Category, error)
	Update(ctx context.Context, c Category) error
	Delete(ctx context.Context, id string) error
}

type AssigneeRepository interface {
	Create(ctx context.Context, a Assignee) (Assignee, error)
	GetByID(ctx context.Context, id string) (Assignee, error)
	List(ctx context.Context, department string) ([]Assignee, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
