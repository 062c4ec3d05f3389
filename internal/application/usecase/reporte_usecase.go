package usecase

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReporteEquipoRow fila plana del reporte de inventario (marca y modelo ya
// resueltos para el render).
type ReporteEquipoRow struct {
	Serial      string
	Marca       string
	Modelo      string
	Estado      string
	Costo       decimal.Decimal
	FechaCompra string // dd/mm/aaaa, vacío si no se registró
}

// InventarioPDFGenerator puerto de salida para el render del reporte.
// La implementación concreta usa Maroto; para tests se puede inyectar un mock.
type InventarioPDFGenerator interface {
	GenerateInventarioPDF(ctx context.Context, empresa *entity.Empresa, rows []ReporteEquipoRow) ([]byte, error)
}

// ReporteUseCase arma el reporte PDF del inventario de equipos de una empresa.
type ReporteUseCase struct {
	equipoRepo  repository.EquipoRepository
	empresaRepo repository.EmpresaRepository
	pdf         InventarioPDFGenerator
}

// NewReporteUseCase construye el caso de uso de reportes.
func NewReporteUseCase(equipoRepo repository.EquipoRepository, empresaRepo repository.EmpresaRepository, pdf InventarioPDFGenerator) *ReporteUseCase {
	return &ReporteUseCase{equipoRepo: equipoRepo, empresaRepo: empresaRepo, pdf: pdf}
}

// InventarioPDF genera el PDF con todos los equipos de la empresa.
func (uc *ReporteUseCase) InventarioPDF(ctx context.Context, empresaID string) ([]byte, error) {
	empresa, err := uc.empresaRepo.GetByID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}

	equipos, err := uc.equipoRepo.ListEquiposByEmpresa(ctx, empresaID, 10000, 0)
	if err != nil {
		return nil, err
	}
	marcas, err := uc.equipoRepo.ListMarcas(ctx)
	if err != nil {
		return nil, err
	}
	marcaPorID := make(map[string]string, len(marcas))
	for _, m := range marcas {
		marcaPorID[m.ID] = m.Nombre
	}

	rows := make([]ReporteEquipoRow, 0, len(equipos))
	for _, e := range equipos {
		row := ReporteEquipoRow{
			Serial: e.Serial,
			Estado: e.Estado,
			Costo:  e.Costo,
		}
		if e.FechaCompra != nil {
			row.FechaCompra = e.FechaCompra.Format("02/01/2006")
		}
		if modelo, err := uc.equipoRepo.GetModeloByID(ctx, e.ModeloID); err == nil && modelo != nil {
			row.Modelo = modelo.Nombre
			row.Marca = marcaPorID[modelo.MarcaID]
		}
		rows = append(rows, row)
	}
	return uc.pdf.GenerateInventarioPDF(ctx, empresa, rows)
}
