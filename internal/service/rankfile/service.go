package rankfile

import (
	"context"

	"github.com/hris-core/hris-backend-go/internal/domain/rankfile"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type RankFileServiceImpl struct {
	rankFileRepo rankfile.RankFileRepository
}

func NewRankFileService(rankFileRepo rankfile.RankFileRepository) rankfile.RankFileService {
	return &RankFileServiceImpl{rankFileRepo: rankFileRepo}
}

// ListRankFiles implements rankfile.RankFileService. A malformed employee
// filter matches nothing.
func (s *RankFileServiceImpl) ListRankFiles(ctx context.Context, filter rankfile.RankFileFilter) ([]rankfile.RankFileResponse, error) {
	if filter.EmployeeID != "" && !validator.IsValidUUID(filter.EmployeeID) {
		return []rankfile.RankFileResponse{}, nil
	}

	entries, err := s.rankFileRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]rankfile.RankFileResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, rankfile.NewRankFileResponse(e))
	}
	return responses, nil
}

func (s *RankFileServiceImpl) GetRankFile(ctx context.Context, id string) (rankfile.RankFileResponse, error) {
	if !validator.IsValidUUID(id) {
		return rankfile.RankFileResponse{}, rankfile.ErrRankFileNotFound
	}

	entry, err := s.rankFileRepo.GetByID(ctx, id)
	if err != nil {
		return rankfile.RankFileResponse{}, err
	}
	return rankfile.NewRankFileResponse(entry), nil
}

func (s *RankFileServiceImpl) CreateRankFile(ctx context.Context, req rankfile.CreateRankFileRequest) (rankfile.RankFileResponse, error) {
	if err := req.Validate(); err != nil {
		return rankfile.RankFileResponse{}, err
	}

	entry := rankfile.RankFile{
		EmployeeID:  req.EmployeeID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Score:       req.Score,
	}
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		entry.Date = &date
	}

	created, err := s.rankFileRepo.Create(ctx, entry)
	if err != nil {
		return rankfile.RankFileResponse{}, err
	}
	return rankfile.NewRankFileResponse(created), nil
}

func (s *RankFileServiceImpl) UpdateRankFile(ctx context.Context, id string, req rankfile.UpdateRankFileRequest) (rankfile.RankFileResponse, error) {
	if !validator.IsValidUUID(id) {
		return rankfile.RankFileResponse{}, rankfile.ErrRankFileNotFound
	}
	if err := req.Validate(); err != nil {
		return rankfile.RankFileResponse{}, err
	}

	updated, err := s.rankFileRepo.Update(ctx, id, req)
	if err != nil {
		return rankfile.RankFileResponse{}, err
	}
	return rankfile.NewRankFileResponse(updated), nil
}

func (s *RankFileServiceImpl) DeleteRankFile(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return rankfile.ErrRankFileNotFound
	}
	return s.rankFileRepo.Delete(ctx, id)
}
