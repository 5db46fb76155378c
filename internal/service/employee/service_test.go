package employee

import (
	"context"
	"testing"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
	"github.com/hris-core/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestEmployeeService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memory.NewStore().Employees())

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FirstName:  " Ada ",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Department: "Engineering",
		HireDate:   ptr("2020-05-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", created.FirstName)
	require.NotNil(t, created.HireDate)
	assert.Equal(t, "2020-05-01", *created.HireDate)

	got, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{Position: ptr("Analyst")})
	require.NoError(t, err)
	assert.Equal(t, "Analyst", updated.Position)
	assert.Equal(t, "Engineering", updated.Department)

	updated, err = svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{
		FirstName: ptr("  Augusta "),
		Email:     ptr(" augusta@example.com "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)
	assert.Equal(t, "augusta@example.com", updated.Email)

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteEmployee(ctx, created.ID))
	_, err = svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, svc.DeleteEmployee(ctx, created.ID), employee.ErrEmployeeNotFound)
}

func TestEmployeeService_RequiredFields(t *testing.T) {
	svc := NewEmployeeService(memory.NewStore().Employees())

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{FirstName: "  "})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	m := verrs.ToMap()
	assert.Contains(t, m, "firstName")
	assert.Contains(t, m, "lastName")
	assert.Contains(t, m, "email")
}

func TestEmployeeService_EmailConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memory.NewStore().Employees())

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{FirstName: "A", LastName: "B", Email: "dup@example.com"})
	require.NoError(t, err)
	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{FirstName: "C", LastName: "D", Email: "dup@example.com"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_MalformedID(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memory.NewStore().Employees())

	_, err := svc.GetEmployee(ctx, "123")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	_, err = svc.UpdateEmployee(ctx, "123", employee.UpdateEmployeeRequest{FirstName: ptr("x")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
