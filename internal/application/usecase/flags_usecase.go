package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/diff"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// FlagsUseCase administra los feature flags por empresa. Solo persisten
// filas para funcionalidades deshabilitadas: la ausencia de fila es
// habilitada (default-on), y una funcionalidad que vuelve al default se
// borra en vez de escribirse con enabled=true.
type FlagsUseCase struct {
	flagRepo    repository.EmpresaFuncionalidadRepository
	empresaRepo repository.EmpresaRepository
}

// NewFlagsUseCase construye el caso de uso de feature flags.
func NewFlagsUseCase(flagRepo repository.EmpresaFuncionalidadRepository, empresaRepo repository.EmpresaRepository) *FlagsUseCase {
	return &FlagsUseCase{flagRepo: flagRepo, empresaRepo: empresaRepo}
}

// ListByEmpresa devuelve las filas persistidas (las deshabilitadas).
func (uc *FlagsUseCase) ListByEmpresa(ctx context.Context, empresaID string) ([]dto.FlagResponse, error) {
	flags, err := uc.flagRepo.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FlagResponse, 0, len(flags))
	for _, f := range flags {
		out = append(out, dto.FlagResponse{
			ID:              f.ID,
			EmpresaID:       f.EmpresaID,
			FuncionalidadID: f.FuncionalidadID,
			Enabled:         f.Enabled,
		})
	}
	return out, nil
}

// Sync aplica el conjunto deseado de funcionalidades deshabilitadas por
// diferencia de conjuntos: altas en un solo lote de inserción, bajas en un
// solo DELETE por ids. Ejecutarlo dos veces sin cambios no toca la base.
func (uc *FlagsUseCase) Sync(ctx context.Context, empresaID string, in dto.SyncFlagsRequest) (*dto.SyncFlagsResponse, error) {
	empresa, err := uc.empresaRepo.GetByID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.flagRepo.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	existingKeys := make([]string, 0, len(existing))
	idPorFuncionalidad := make(map[string]string, len(existing))
	for _, f := range existing {
		existingKeys = append(existingKeys, f.FuncionalidadID)
		idPorFuncionalidad[f.FuncionalidadID] = f.ID
	}

	d := diff.SetDiff(existingKeys, in.Deshabilitadas)

	if len(d.ToAdd) > 0 {
		now := time.Now()
		inserts := make([]*entity.EmpresaFuncionalidad, 0, len(d.ToAdd))
		for _, funcionalidadID := range d.ToAdd {
			inserts = append(inserts, &entity.EmpresaFuncionalidad{
				ID:              uuid.New().String(),
				EmpresaID:       empresaID,
				FuncionalidadID: funcionalidadID,
				Enabled:         false,
				CreatedAt:       now,
				UpdatedAt:       now,
			})
		}
		if err := uc.flagRepo.CreateBatch(ctx, inserts); err != nil {
			return nil, err
		}
	}
	if len(d.ToDelete) > 0 {
		ids := make([]string, 0, len(d.ToDelete))
		for _, funcionalidadID := range d.ToDelete {
			ids = append(ids, idPorFuncionalidad[funcionalidadID])
		}
		if err := uc.flagRepo.DeleteByIDs(ctx, ids); err != nil {
			return nil, err
		}
	}
	return &dto.SyncFlagsResponse{Added: len(d.ToAdd), Deleted: len(d.ToDelete)}, nil
}
