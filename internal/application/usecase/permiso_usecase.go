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

// PermisoUseCase sincroniza la matriz de permisos de un rol por diferencias:
// instantánea leída vs conjunto de trabajo del editor. Política de solo
// upsert: una fila nunca se borra al volver a su valor por defecto, la
// presencia explícita es la regla.
type PermisoUseCase struct {
	permisoRepo repository.RolPermisoRepository
	rolRepo     repository.RolRepository
}

// NewPermisoUseCase construye el caso de uso de la matriz de permisos.
func NewPermisoUseCase(permisoRepo repository.RolPermisoRepository, rolRepo repository.RolRepository) *PermisoUseCase {
	return &PermisoUseCase{permisoRepo: permisoRepo, rolRepo: rolRepo}
}

// ListByRol devuelve las filas persistidas de la matriz para un rol.
// Las funcionalidades sin fila se interpretan como allow=false.
func (uc *PermisoUseCase) ListByRol(ctx context.Context, rolID string) ([]dto.PermisoResponse, error) {
	permisos, err := uc.permisoRepo.ListByRol(ctx, rolID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PermisoResponse, 0, len(permisos))
	for _, p := range permisos {
		out = append(out, toPermisoResponse(p))
	}
	return out, nil
}

// Sync aplica el conjunto de trabajo del editor contra la instantánea
// persistida: las claves nuevas van en un solo lote de inserción, las
// cambiadas en updates secuenciales fila a fila. Poner allow=false NO borra
// Acciones: el mapa viaja completo y reactivar restaura las elecciones
// previas por acción.
func (uc *PermisoUseCase) Sync(ctx context.Context, rolID string, in dto.SyncPermisosRequest) (*dto.SyncPermisosResponse, error) {
	rol, err := uc.rolRepo.GetByID(ctx, rolID)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.permisoRepo.ListByRol(ctx, rolID)
	if err != nil {
		return nil, err
	}
	snapshot := make(map[string]*entity.RolPermiso, len(existing))
	for _, p := range existing {
		snapshot[p.FuncionalidadID] = p
	}

	now := time.Now()
	working := make(map[string]*entity.RolPermiso, len(in.Entries))
	for _, e := range in.Entries {
		acciones := e.Acciones
		if acciones == nil {
			acciones = map[string]bool{}
		}
		p := &entity.RolPermiso{
			RolID:           rolID,
			FuncionalidadID: e.FuncionalidadID,
			Allow:           e.Allow,
			Acciones:        acciones,
			UpdatedAt:       now,
		}
		if prev, ok := snapshot[e.FuncionalidadID]; ok {
			p.ID = prev.ID
			p.CreatedAt = prev.CreatedAt
		} else {
			p.ID = uuid.New().String()
			p.CreatedAt = now
		}
		working[e.FuncionalidadID] = p
	}

	toInsert, toUpdate := diff.Partition(snapshot, working, func(a, b *entity.RolPermiso) bool {
		return a.Allow == b.Allow && entity.AccionesIguales(a.Acciones, b.Acciones)
	})

	inserts := make([]*entity.RolPermiso, 0, len(toInsert))
	for _, k := range toInsert {
		inserts = append(inserts, working[k])
	}
	if len(inserts) > 0 {
		if err := uc.permisoRepo.CreateBatch(ctx, inserts); err != nil {
			return nil, err
		}
	}
	for _, k := range toUpdate {
		if err := uc.permisoRepo.Update(ctx, working[k]); err != nil {
			return nil, err
		}
	}
	return &dto.SyncPermisosResponse{Inserted: len(toInsert), Updated: len(toUpdate)}, nil
}

func toPermisoResponse(p *entity.RolPermiso) dto.PermisoResponse {
	return dto.PermisoResponse{
		ID:              p.ID,
		RolID:           p.RolID,
		FuncionalidadID: p.FuncionalidadID,
		Allow:           p.Allow,
		Acciones:        p.Acciones,
	}
}
