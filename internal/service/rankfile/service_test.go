package rankfile

import (
	"context"
	"testing"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/domain/rankfile"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
	"github.com/hris-core/hris-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (rankfile.RankFileService, string) {
	t.Helper()
	store := memory.NewStore()
	emp, err := store.Employees().Create(context.Background(), employee.Employee{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	require.NoError(t, err)
	return NewRankFileService(store.RankFiles()), emp.ID
}

func TestRankFileService(t *testing.T) {
	ctx := context.Background()
	svc, empID := setup(t)
	date := "2024-06-01"
	score := decimal.RequireFromString("4.5")

	created, err := svc.CreateRankFile(ctx, rankfile.CreateRankFileRequest{
		EmployeeID: empID,
		Type:       rankfile.TypeEvaluation,
		Title:      "Mid-year review",
		Date:       &date,
		Score:      &score,
	})
	require.NoError(t, err)
	require.NotNil(t, created.Score)
	assert.True(t, created.Score.Equal(score))

	_, err = svc.CreateRankFile(ctx, rankfile.CreateRankFileRequest{EmployeeID: empID, Type: rankfile.TypeTraining, Title: "Go course"})
	require.NoError(t, err)

	evaluations, err := svc.ListRankFiles(ctx, rankfile.RankFileFilter{EmployeeID: empID, Type: rankfile.TypeEvaluation})
	require.NoError(t, err)
	require.Len(t, evaluations, 1)
	assert.Equal(t, created.ID, evaluations[0].ID)

	title := "Annual review"
	updated, err := svc.UpdateRankFile(ctx, created.ID, rankfile.UpdateRankFileRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, rankfile.TypeEvaluation, updated.Type)

	require.NoError(t, svc.DeleteRankFile(ctx, created.ID))
	_, err = svc.GetRankFile(ctx, created.ID)
	assert.ErrorIs(t, err, rankfile.ErrRankFileNotFound)
}

func TestRankFileService_RejectsUnknownType(t *testing.T) {
	svc, empID := setup(t)

	_, err := svc.CreateRankFile(context.Background(), rankfile.CreateRankFileRequest{EmployeeID: empID, Type: "promotion", Title: "x"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "must be one of: achievement, training, certification, evaluation", verrs.ToMap()["type"])
}

func TestRankFileService_UnknownEmployee(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.CreateRankFile(context.Background(), rankfile.CreateRankFileRequest{
		EmployeeID: "00000000-0000-0000-0000-000000000000",
		Type:       rankfile.TypeAchievement,
		Title:      "x",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeReference)
}
