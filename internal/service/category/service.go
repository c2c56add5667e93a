package category

import (
	"context"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/category"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/employee"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type CategoryServiceImpl struct {
	db *database.DB
	category.CategoryRepository
	category.AssigneeRepository
	employee.EmployeeRepository
}

func NewCategoryService(
	db *database.DB,
	categoryRepository category.CategoryRepository,
	assigneeRepository category.AssigneeRepository,
	employeeRepository employee.EmployeeRepository,
) category.CategoryService {
	return &CategoryServiceImpl{
		db:                 db,
		CategoryRepository: categoryRepository,
		AssigneeRepository: assigneeRepository,
		EmployeeRepository: employeeRepository,
	}
}

func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return category.CategoryResponse{}, err
	}

	created, err := s.CategoryRepository.Create(ctx, category.Category{
		Name:       req.Name,
		Department: req.Department,
	})
	if err != nil {
		return category.CategoryResponse{}, err
	}

	return toCategoryResponse(created), nil
}

func (s *CategoryServiceImpl) ListCategories(ctx context.Context, department string) ([]category.CategoryResponse, error) {
	categories, err := s.CategoryRepository.List(ctx, department)
	if err != nil {
		return nil, err
	}

	responses := make([]category.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, toCategoryResponse(c))
	}

	return responses, nil
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	return s.CategoryRepository.Delete(ctx, id)
}

func (s *CategoryServiceImpl) CreateAssignee(ctx context.Context, req category.CreateAssigneeRequest) (category.AssigneeResponse, error) {
	if err := req.Validate(); err != nil {
		return category.AssigneeResponse{}, err
	}

	// The employee must exist before becoming routable.
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return category.AssigneeResponse{}, err
	}

	created, err := s.AssigneeRepository.Create(ctx, category.Assignee{
		EmployeeID: req.EmployeeID,
		Department: req.Department,
	})
	if err != nil {
		return category.AssigneeResponse{}, err
	}

	return toAssigneeResponse(created), nil
}

func (s *CategoryServiceImpl) ListAssignees(ctx context.Context, department string) ([]category.AssigneeResponse, error) {
	assignees, err := s.AssigneeRepository.List(ctx, department)
	if err != nil {
		return nil, err
	}

	responses := make([]category.AssigneeResponse, 0, len(assignees))
	for _, a := range assignees {
		responses = append(responses, toAssigneeResponse(a))
	}

	return responses, nil
}

func (s *CategoryServiceImpl) SetAssigneeActive(ctx context.Context, id string, active bool) (category.AssigneeResponse, error) {
	if err := s.AssigneeRepository.SetActive(ctx, id, active); err != nil {
		return category.AssigneeResponse{}, err
	}

	a, err := s.AssigneeRepository.GetByID(ctx, id)
	if err != nil {
		return category.AssigneeResponse{}, err
	}

	return toAssigneeResponse(a), nil
}

func (s *CategoryServiceImpl) DeleteAssignee(ctx context.Context, id string) error {
	return s.AssigneeRepository.Delete(ctx, id)
}

func toCategoryResponse(c category.Category) category.CategoryResponse {
	return category.CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		Department: c.Department,
	}
}

func toAssigneeResponse(a category.Assignee) category.AssigneeResponse {
	return category.AssigneeResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Department:   a.Department,
		Active:       a.Active,
	}
}
