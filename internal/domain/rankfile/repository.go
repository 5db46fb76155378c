package rankfile

import "context"

type RankFileRepository interface {
	// List returns entries ordered by date, newest first, undated last.
	List(ctx context.Context, filter RankFileFilter) ([]RankFile, error)
	GetByID(ctx context.Context, id string) (RankFile, error)
	Create(ctx context.Context, entry RankFile) (RankFile, error)
	Update(ctx context.Context, id string, req UpdateRankFileRequest) (RankFile, error)
	Delete(ctx context.Context, id string) error
}
