package rankfile

import "context"

type RankFileService interface {
	ListRankFiles(ctx context.Context, filter RankFileFilter) ([]RankFileResponse, error)
	GetRankFile(ctx context.Context, id string) (RankFileResponse, error)
	CreateRankFile(ctx context.Context, req CreateRankFileRequest) (RankFileResponse, error)
	UpdateRankFile(ctx context.Context, id string, req UpdateRankFileRequest) (RankFileResponse, error)
	DeleteRankFile(ctx context.Context, id string) error
}
