package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reventa-api/internal/domain"
	"github.com/jhoicas/Reventa-api/internal/domain/entity"
	"github.com/jhoicas/Reventa-api/internal/domain/repository"
)

type fakeUserRepo struct{ user *entity.User }

func (f *fakeUserRepo) Create(*entity.User) error               { return nil }
func (f *fakeUserRepo) GetByID(string) (*entity.User, error)    { return f.user, nil }
func (f *fakeUserRepo) GetByEmail(string) (*entity.User, error) { return f.user, nil }
func (f *fakeUserRepo) Update(*entity.User) error               { return nil }
func (f *fakeUserRepo) Delete(string) error                     { return nil }

type fakeItemRepo struct{ sold []*entity.Item }

func (f *fakeItemRepo) Create(*entity.Item) error            { return nil }
func (f *fakeItemRepo) CreateBatch([]*entity.Item) error     { return nil }
func (f *fakeItemRepo) GetByID(string) (*entity.Item, error) { return nil, nil }
func (f *fakeItemRepo) Update(*entity.Item) error            { return nil }
func (f *fakeItemRepo) ListByUser(string, repository.ItemFilter, int, int) ([]*entity.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) ListByOrder(string) ([]*entity.Item, error) { return nil, nil }
func (f *fakeItemRepo) Delete(string) error                        { return nil }
func (f *fakeItemRepo) ListSoldByUser(context.Context, string) ([]*entity.Item, error) {
	return f.sold, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.ItemRepository = (*fakeItemRepo)(nil)

// captureGenerator guarda el informe recibido y devuelve bytes fijos.
type captureGenerator struct{ got *MonthlyReport }

func (c *captureGenerator) GenerateMonthlyReportPDF(_ context.Context, r *MonthlyReport) ([]byte, error) {
	c.got = r
	return []byte("%PDF-fake"), nil
}

func venta(name string, price, cost string, soldAt time.Time) *entity.Item {
	d := soldAt
	return &entity.Item{
		ID:        name,
		Name:      name,
		Platform:  "Vinted",
		Quantity:  1,
		UnitCost:  decimal.RequireFromString(cost),
		SoldPrice: decimal.RequireFromString(price),
		SoldDate:  &d,
		Status:    entity.ItemStatusSold,
	}
}

func TestDownloadMonthlyReport_FiltraAlMesSolicitado(t *testing.T) {
	sold := []*entity.Item{
		venta("dentro-a", "85", "45", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
		venta("dentro-b", "45", "20", time.Date(2025, 9, 30, 23, 0, 0, 0, time.UTC)),
		venta("fuera", "500", "10", time.Date(2025, 8, 31, 23, 59, 0, 0, time.UTC)),
	}
	gen := &captureGenerator{}
	uc := NewReportUseCase(
		&fakeUserRepo{user: &entity.User{ID: "u1", Name: "Ana"}},
		&fakeItemRepo{sold: sold},
		gen,
	)

	pdfBytes, filename, err := uc.DownloadMonthlyReport(context.Background(), "u1", "2025-09")
	require.NoError(t, err)
	assert.Equal(t, "informe_2025-09.pdf", filename)
	assert.NotEmpty(t, pdfBytes)

	require.NotNil(t, gen.got)
	assert.Equal(t, "Ana", gen.got.UserName)
	assert.Equal(t, 2, gen.got.Totals.SalesCount, "la venta de agosto queda fuera")
	assert.True(t, gen.got.Totals.Revenue.Equal(decimal.RequireFromString("130")))
	require.Len(t, gen.got.Platforms, 1)
	assert.Equal(t, "Vinted", gen.got.Platforms[0].Platform)
	require.Len(t, gen.got.Top, 2)
}

func TestDownloadMonthlyReport_RegimenReducido(t *testing.T) {
	sold := []*entity.Item{venta("v", "100", "50", time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))}
	gen := &captureGenerator{}
	uc := NewReportUseCase(
		&fakeUserRepo{user: &entity.User{ID: "u1", ReducedTax: true}},
		&fakeItemRepo{sold: sold},
		gen,
	)

	_, _, err := uc.DownloadMonthlyReport(context.Background(), "u1", "2025-09")
	require.NoError(t, err)
	assert.True(t, gen.got.ReducedTax)
	assert.True(t, gen.got.Totals.Tax.Equal(decimal.RequireFromString("11")), "100 × 0.11")
}

func TestDownloadMonthlyReport_PeriodoInvalido(t *testing.T) {
	uc := NewReportUseCase(&fakeUserRepo{user: &entity.User{ID: "u1"}}, &fakeItemRepo{}, &captureGenerator{})
	_, _, err := uc.DownloadMonthlyReport(context.Background(), "u1", "septiembre")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDownloadMonthlyReport_UsuarioInexistente(t *testing.T) {
	uc := NewReportUseCase(&fakeUserRepo{}, &fakeItemRepo{}, &captureGenerator{})
	_, _, err := uc.DownloadMonthlyReport(context.Background(), "nadie", "2025-09")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDownloadMonthlyReport_PeriodoVacioEsElMesEnCurso(t *testing.T) {
	gen := &captureGenerator{}
	uc := NewReportUseCase(&fakeUserRepo{user: &entity.User{ID: "u1"}}, &fakeItemRepo{}, gen)
	_, filename, err := uc.DownloadMonthlyReport(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.Equal(t, "informe_"+time.Now().Format("2006-01")+".pdf", filename)
	assert.Equal(t, 0, gen.got.Totals.SalesCount)
}
