package service

import (
	"errors"

	"go-pos-ws/internal/apperr"
	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"
	"go-pos-ws/internal/ws"
	"go-pos-ws/pkg/validator"

	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(req *model.Product) error
	UpdateProduct(id string, req *model.Product) (*model.Product, error)
	DeleteProduct(id string) error
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id string) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewProductService(repo repository.ProductRepository, hub *ws.Hub) ProductService {
	return &productService{productRepo: repo, wsHub: hub}
}

func (s *productService) CreateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return apperr.Validationf("field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.productRepo.Create(req); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflictf("SKU %s already exists", req.SKU)
		}
		return err
	}

	s.wsHub.Publish(ws.EventProductUpdated, req)
	return nil
}

func (s *productService) UpdateProduct(id string, req *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("product %s", id)
		}
		return nil, err
	}

	existing.SKU = req.SKU
	existing.Name = req.Name
	existing.Category = req.Category
	existing.Stock = req.Stock
	existing.Unit = req.Unit
	existing.UnitPrice = req.UnitPrice
	existing.HalfUnitPrice = req.HalfUnitPrice
	existing.QuarterUnitPrice = req.QuarterUnitPrice
	existing.CostPrice = req.CostPrice
	existing.Archived = req.Archived

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.Validationf("field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.productRepo.Update(existing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("SKU %s already exists", existing.SKU)
		}
		return nil, err
	}

	s.wsHub.Publish(ws.EventProductUpdated, existing)
	return existing, nil
}

func (s *productService) DeleteProduct(id string) error {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("product %s", id)
		}
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.wsHub.Publish(ws.EventProductDeleted, existing)
	return nil
}

func (s *productService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetProductByID(id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("product %s", id)
		}
		return nil, err
	}
	return product, nil
}
