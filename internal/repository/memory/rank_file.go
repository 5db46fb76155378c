package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/domain/rankfile"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type rankFileRepo struct{ s *Store }

func (r rankFileRepo) List(ctx context.Context, filter rankfile.RankFileFilter) ([]rankfile.RankFile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]rankfile.RankFile, 0)
	for _, rf := range r.s.data.rankFiles {
		if filter.EmployeeID != "" && rf.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Type != "" && rf.Type != filter.Type {
			continue
		}
		list = append(list, rf)
	}
	slices.SortFunc(list, func(a, b rankfile.RankFile) int {
		var byDate int
		switch {
		case a.Date == nil && b.Date == nil:
		case a.Date == nil:
			byDate = 1
		case b.Date == nil:
			byDate = -1
		default:
			byDate = b.Date.Compare(*a.Date)
		}
		return cmp.Or(byDate, r.s.order(a.ID, b.ID))
	})
	return list, nil
}

func (r rankFileRepo) GetByID(ctx context.Context, id string) (rankfile.RankFile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rf, ok := r.s.data.rankFiles[id]
	if !ok {
		return rankfile.RankFile{}, rankfile.ErrRankFileNotFound
	}
	return rf, nil
}

func (r rankFileRepo) Create(ctx context.Context, entry rankfile.RankFile) (rankfile.RankFile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.employeeExists(entry.EmployeeID) {
		return rankfile.RankFile{}, employee.ErrEmployeeReference
	}

	entry.ID = r.s.newID()
	r.s.data.rankFiles[entry.ID] = entry
	return entry, nil
}

func (r rankFileRepo) Update(ctx context.Context, id string, req rankfile.UpdateRankFileRequest) (rankfile.RankFile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rf, ok := r.s.data.rankFiles[id]
	if !ok {
		return rankfile.RankFile{}, rankfile.ErrRankFileNotFound
	}

	if req.Type != nil {
		rf.Type = *req.Type
	}
	if req.Title != nil {
		rf.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		rf.Description = *req.Description
	}
	if req.Date != nil {
		d, _ := validator.IsValidDate(*req.Date)
		rf.Date = &d
	}
	if req.Score != nil {
		score := *req.Score
		rf.Score = &score
	}

	r.s.data.rankFiles[id] = rf
	return rf, nil
}

func (r rankFileRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.rankFiles[id]; !ok {
		return rankfile.ErrRankFileNotFound
	}
	delete(r.s.data.rankFiles, id)
	return nil
}
