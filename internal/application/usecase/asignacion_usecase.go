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

// AsignacionTxRunner ejecuta el callback dentro de una transacción con el
// repositorio de asignaciones atado a ella. Un fallo a mitad de la
// sincronización no deja altas sin sus bajas.
type AsignacionTxRunner interface {
	Run(ctx context.Context, fn func(repo repository.UsuarioRolRepository) error) error
}

// AsignacionUseCase administra las asignaciones usuario→rol por sección.
// Invariante: a lo sumo un rol por (empresa, usuario, sección); elegir un rol
// nuevo dentro de una sección reemplaza al anterior.
type AsignacionUseCase struct {
	asignacionRepo repository.UsuarioRolRepository
	usuarioRepo    repository.UsuarioRepository
	rolRepo        repository.RolRepository
	tx             AsignacionTxRunner
}

// NewAsignacionUseCase construye el caso de uso de asignaciones.
func NewAsignacionUseCase(
	asignacionRepo repository.UsuarioRolRepository,
	usuarioRepo repository.UsuarioRepository,
	rolRepo repository.RolRepository,
	tx AsignacionTxRunner,
) *AsignacionUseCase {
	return &AsignacionUseCase{
		asignacionRepo: asignacionRepo,
		usuarioRepo:    usuarioRepo,
		rolRepo:        rolRepo,
		tx:             tx,
	}
}

// ListByUsuario devuelve las asignaciones vigentes del usuario en la empresa.
func (uc *AsignacionUseCase) ListByUsuario(ctx context.Context, empresaID, userID string) ([]dto.AsignacionResponse, error) {
	asignaciones, err := uc.asignacionRepo.ListByUsuario(ctx, empresaID, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AsignacionResponse, 0, len(asignaciones))
	for _, a := range asignaciones {
		out = append(out, toAsignacionResponse(a))
	}
	return out, nil
}

// Sync aplica el conjunto deseado por diferencia de conjuntos con clave
// compuesta seccion|rol: bajas en un DELETE ... IN (...) por ids, altas en
// un solo lote de inserción, todo dentro de una transacción. Cada rol
// deseado debe existir, pertenecer a la empresa y a su sección declarada; el
// conjunto deseado no puede traer dos entradas para la misma sección.
func (uc *AsignacionUseCase) Sync(ctx context.Context, empresaID, userID string, in dto.SyncAsignacionesRequest) (*dto.SyncAsignacionesResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}

	porSeccion := make(map[string]string, len(in.Asignaciones))
	for _, a := range in.Asignaciones {
		if _, dup := porSeccion[a.SeccionID]; dup {
			return nil, domain.ErrInvalidInput // dos roles para la misma sección
		}
		rol, err := uc.rolRepo.GetByID(ctx, a.RolID)
		if err != nil {
			return nil, err
		}
		if rol == nil || rol.EmpresaID != empresaID || rol.SeccionID != a.SeccionID {
			return nil, domain.ErrInvalidInput
		}
		porSeccion[a.SeccionID] = a.RolID
	}

	existing, err := uc.asignacionRepo.ListByUsuario(ctx, empresaID, userID)
	if err != nil {
		return nil, err
	}

	type clave struct{ seccionID, rolID string }
	existingKeys := make([]clave, 0, len(existing))
	idPorClave := make(map[clave]string, len(existing))
	for _, a := range existing {
		k := clave{a.SeccionID, a.RolID}
		existingKeys = append(existingKeys, k)
		idPorClave[k] = a.ID
	}
	desiredKeys := make([]clave, 0, len(porSeccion))
	for seccionID, rolID := range porSeccion {
		desiredKeys = append(desiredKeys, clave{seccionID, rolID})
	}

	d := diff.SetDiff(existingKeys, desiredKeys)
	if len(d.ToAdd) == 0 && len(d.ToDelete) == 0 {
		return &dto.SyncAsignacionesResponse{}, nil
	}

	now := time.Now()
	err = uc.tx.Run(ctx, func(repo repository.UsuarioRolRepository) error {
		if len(d.ToDelete) > 0 {
			ids := make([]string, 0, len(d.ToDelete))
			for _, k := range d.ToDelete {
				ids = append(ids, idPorClave[k])
			}
			if err := repo.DeleteByIDs(ctx, ids); err != nil {
				return err
			}
		}
		if len(d.ToAdd) > 0 {
			inserts := make([]*entity.UsuarioRol, 0, len(d.ToAdd))
			for _, k := range d.ToAdd {
				inserts = append(inserts, &entity.UsuarioRol{
					ID:        uuid.New().String(),
					EmpresaID: empresaID,
					UserID:    userID,
					SeccionID: k.seccionID,
					RolID:     k.rolID,
					CreatedAt: now,
				})
			}
			if err := repo.CreateBatch(ctx, inserts); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.SyncAsignacionesResponse{Added: len(d.ToAdd), Deleted: len(d.ToDelete)}, nil
}

// Asignar asigna un rol al usuario en la sección del rol, reemplazando la
// asignación previa de esa sección si existe (la base además lo garantiza
// con el índice único sobre la clave compuesta).
func (uc *AsignacionUseCase) Asignar(ctx context.Context, empresaID, userID, rolID string) (*dto.AsignacionResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	rol, err := uc.rolRepo.GetByID(ctx, rolID)
	if err != nil {
		return nil, err
	}
	if rol == nil || rol.EmpresaID != empresaID {
		return nil, domain.ErrInvalidInput
	}

	nueva := &entity.UsuarioRol{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		UserID:    userID,
		SeccionID: rol.SeccionID,
		RolID:     rolID,
		CreatedAt: time.Now(),
	}
	err = uc.tx.Run(ctx, func(repo repository.UsuarioRolRepository) error {
		previa, err := repo.GetByUsuarioYSeccion(ctx, empresaID, userID, rol.SeccionID)
		if err != nil {
			return err
		}
		if previa != nil {
			if previa.RolID == rolID {
				nueva = previa // ya estaba: no hay nada que escribir
				return nil
			}
			if err := repo.DeleteByIDs(ctx, []string{previa.ID}); err != nil {
				return err
			}
		}
		return repo.CreateBatch(ctx, []*entity.UsuarioRol{nueva})
	})
	if err != nil {
		return nil, err
	}
	out := toAsignacionResponse(nueva)
	return &out, nil
}

func toAsignacionResponse(a *entity.UsuarioRol) dto.AsignacionResponse {
	return dto.AsignacionResponse{
		ID:        a.ID,
		EmpresaID: a.EmpresaID,
		UserID:    a.UserID,
		SeccionID: a.SeccionID,
		RolID:     a.RolID,
	}
}
