package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Equipos-api/internal/application/cache"
	"github.com/jhoicas/Equipos-api/internal/application/dto"
	"github.com/jhoicas/Equipos-api/internal/domain"
	"github.com/jhoicas/Equipos-api/internal/domain/entity"
	"github.com/jhoicas/Equipos-api/internal/domain/repository"
)

// EquipmentUseCase aplica reglas de negocio para el registro de equipos.
// Invariante de toda escritura: status available fuerza Holder a la
// ubicación de bodega por defecto. Los equipos nunca se borran desde los
// flujos del sistema.
type EquipmentUseCase struct {
	repo        repository.EquipmentRepository
	companyRepo repository.CompanyRepository
	labels      LabelGenerator
	store       *cache.Store
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(repo repository.EquipmentRepository, companyRepo repository.CompanyRepository, labels LabelGenerator, store *cache.Store) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, companyRepo: companyRepo, labels: labels, store: store}
}

// Create registra un equipo nuevo (solo admin). Nace disponible, en la
// bodega por defecto. Devuelve ErrCodeAlreadyExists si el código ya
// existe en el tenant.
func (uc *EquipmentUseCase) Create(companyID string, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	code := strings.TrimSpace(in.Code)
	if in.Name == "" || code == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(companyID, code)
	if existing != nil {
		return nil, domain.ErrCodeAlreadyExists
	}
	equipment := &entity.Equipment{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Code:      code,
		Category:  in.Category,
		Status:    entity.StatusAvailable,
		Holder:    entity.DefaultStockLocation,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Create(equipment); err != nil {
		return nil, err
	}
	uc.store.Invalidate(cache.Equipments)
	return entityToEquipmentResponse(equipment), nil
}

// GetByID obtiene un equipo por ID dentro del tenant.
func (uc *EquipmentUseCase) GetByID(companyID, id string) (*dto.EquipmentResponse, error) {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipment == nil || equipment.CompanyID != companyID {
		return nil, nil
	}
	return entityToEquipmentResponse(equipment), nil
}

// GetByCode busca por código exacto (case-insensitive) dentro del tenant.
func (uc *EquipmentUseCase) GetByCode(companyID, code string) (*dto.EquipmentResponse, error) {
	equipment, err := uc.repo.GetByCode(companyID, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, nil
	}
	return entityToEquipmentResponse(equipment), nil
}

// Update edita un equipo (solo admin). Valida el estado contra la
// enumeración cerrada y normaliza el invariante estado/ubicación.
func (uc *EquipmentUseCase) Update(companyID, id string, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipment == nil || equipment.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		equipment.Name = in.Name
	}
	if in.Category != "" {
		equipment.Category = in.Category
	}
	if in.Status != "" {
		if !entity.ValidStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		equipment.Status = in.Status
	}
	if in.Holder != "" {
		equipment.Holder = in.Holder
	}
	// Invariante estado/ubicación: disponible implica bodega.
	if equipment.Status == entity.StatusAvailable {
		equipment.Holder = entity.DefaultStockLocation
	}
	equipment.UpdatedAt = time.Now()
	if err := uc.repo.Update(equipment); err != nil {
		return nil, err
	}
	uc.store.Invalidate(cache.Equipments)
	return entityToEquipmentResponse(equipment), nil
}

// List lista equipos del tenant con paginación, ordenados por nombre.
func (uc *EquipmentUseCase) List(companyID string, limit, offset int) (*dto.EquipmentListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipmentResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToEquipmentResponse(e))
	}
	return &dto.EquipmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListAll devuelve la colección completa del tenant, pasando por el
// almacén de colecciones: si está cacheada se sirve tal cual; si no, se
// relee completa y se cachea. Las escrituras invalidan (no fusionan).
func (uc *EquipmentUseCase) ListAll(companyID string) ([]*entity.Equipment, error) {
	key := cache.Key(cache.Equipments, companyID)
	if v, ok := uc.store.Get(key); ok {
		if list, ok := v.([]*entity.Equipment); ok {
			return list, nil
		}
	}
	list, err := uc.repo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}
	uc.store.Set(key, list)
	return list, nil
}

// Label genera la hoja de etiqueta QR del equipo en PDF.
func (uc *EquipmentUseCase) Label(ctx context.Context, companyID, id string) ([]byte, error) {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipment == nil || equipment.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.labels.GenerateLabel(ctx, equipment, company)
}

func entityToEquipmentResponse(e *entity.Equipment) *dto.EquipmentResponse {
	if e == nil {
		return nil
	}
	return &dto.EquipmentResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		Name:      e.Name,
		Code:      e.Code,
		Category:  e.Category,
		Status:    e.Status,
		Holder:    e.Holder,
		UpdatedAt: e.UpdatedAt,
	}
}
