package service

import (
	"context"
	"slices"

	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/ingestion"
	"github.com/guttosm/cryptopulse/internal/storage"
)

// CodeSource lists the codes the "all codes" operations iterate over.
type CodeSource interface {
	Codes(ctx context.Context) ([]models.AssetCode, error)
	Exists(ctx context.Context, code string) (bool, error)
}

// RegistrySource reads codes from the persisted registry.
type RegistrySource struct {
	Repo storage.CodeRepository
}

func (r RegistrySource) Codes(ctx context.Context) ([]models.AssetCode, error) {
	return r.Repo.ListCodes(ctx)
}

func (r RegistrySource) Exists(ctx context.Context, code string) (bool, error) {
	return r.Repo.ExistsCode(ctx, code)
}

// FolderSource derives codes from the price files present in a folder.
type FolderSource struct {
	Folder *ingestion.Folder
}

func (f FolderSource) Codes(context.Context) ([]models.AssetCode, error) {
	names, err := f.Folder.ListAvailableCodes()
	if err != nil {
		return nil, err
	}
	out := make([]models.AssetCode, len(names))
	for i, n := range names {
		out[i] = models.AssetCode{Code: n}
	}
	return out, nil
}

func (f FolderSource) Exists(_ context.Context, code string) (bool, error) {
	names, err := f.Folder.ListAvailableCodes()
	if err != nil {
		return false, err
	}
	return slices.Contains(names, code), nil
}

func codeNames(in []models.AssetCode) []string {
	out := make([]string, len(in))
	for i, c := range in {
		out[i] = c.Code
	}
	return out
}
