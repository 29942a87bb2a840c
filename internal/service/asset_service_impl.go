package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
)

type assetService struct {
	session *Session
}

func NewAssetService(session *Session) AssetService {
	return &assetService{session: session}
}

func (s *assetService) List(_ context.Context) ([]*domain.Asset, error) {
	assets := []*domain.Asset{}
	err := s.session.View(func(doc *domain.Document, _ string) error {
		assets = append(assets, doc.Today.Assets...)
		return nil
	})
	return assets, err
}

func (s *assetService) Get(_ context.Context, id string) (*domain.Asset, error) {
	var asset *domain.Asset
	err := s.session.View(func(doc *domain.Document, _ string) error {
		var err error
		asset, err = doc.Today.FindAsset(id)
		return err
	})
	return asset, err
}

func (s *assetService) Add(ctx context.Context, req contract.AddAssetRequest) (*domain.Asset, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := requireName("name", req.Name); err != nil {
		return nil, err
	}

	var asset *domain.Asset
	err := s.session.Mutate(ctx, "add_asset", "asset", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		asset = &domain.Asset{
			ID:     s.session.newID(),
			Name:   req.Name,
			Type:   domain.StrFromPtr(req.Type),
			Amount: domain.Float64Ptr(domain.Float64FromPtrWithDefault(0, req.Amount)),
		}
		doc.Today.Assets = append(doc.Today.Assets, asset)

		rec.TargetID = asset.ID
		rec.Summary = fmt.Sprintf("added asset %q", asset.Name)
		return nil
	})
	return asset, err
}

func (s *assetService) Update(ctx context.Context, req contract.UpdateAssetRequest) (*domain.Asset, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := requireNameIfPresent("name", req.Name); err != nil {
		return nil, err
	}

	var asset *domain.Asset
	err := s.session.Mutate(ctx, "update_asset", "asset", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		a, err := doc.Today.FindAsset(req.AssetID)
		if err != nil {
			return err
		}
		setIfPresent(&a.Name, req.Name)
		setIfPresent(&a.Type, req.Type)
		setPtrIfPresent(&a.Amount, req.Amount)

		rec.TargetID = a.ID
		rec.Summary = fmt.Sprintf("updated asset %q", a.Name)
		asset = a
		return nil
	})
	return asset, err
}

func (s *assetService) Delete(ctx context.Context, id string) (*contract.DeleteResult, error) {
	var result *contract.DeleteResult
	err := s.session.Mutate(ctx, "delete_asset", "asset", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		a, i, ok := domain.FindByID(doc.Today.Assets, id)
		if !ok {
			return domain.NewNotFound("asset", id)
		}
		doc.Today.Assets = domain.RemoveAt(doc.Today.Assets, i)

		rec.TargetID = a.ID
		rec.Summary = fmt.Sprintf("deleted asset %q", a.Name)
		result = deleted(a.ID, a.Name)
		return nil
	})
	return result, err
}
