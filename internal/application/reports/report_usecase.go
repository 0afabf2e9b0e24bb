package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Reventa-api/internal/application/analytics"
	"github.com/jhoicas/Reventa-api/internal/domain"
	"github.com/jhoicas/Reventa-api/internal/domain/entity"
	"github.com/jhoicas/Reventa-api/internal/domain/repository"
)

// periodLayout formato del mes solicitado, ej: "2025-09".
const periodLayout = "2006-01"

// topProductsInReport ventas destacadas que se listan en el informe.
const topProductsInReport = 5

// MonthlyReport datos ya agregados de un mes natural, listos para renderizar.
type MonthlyReport struct {
	UserName    string
	Period      string // mes del informe, formato 2006-01
	From, To    time.Time
	ReducedTax  bool
	Totals      analytics.Aggregate
	Platforms   []analytics.PlatformAggregate
	Top         []analytics.ItemProfit
	GeneratedAt time.Time
}

// ReportPDFGenerator puerto de render: la infraestructura decide el layout.
type ReportPDFGenerator interface {
	GenerateMonthlyReportPDF(ctx context.Context, report *MonthlyReport) ([]byte, error)
}

// ReportUseCase genera el informe financiero mensual del revendedor.
type ReportUseCase struct {
	userRepo  repository.UserRepository
	itemRepo  repository.ItemRepository
	generator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	generator ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{userRepo: userRepo, itemRepo: itemRepo, generator: generator}
}

// DownloadMonthlyReport agrega las ventas del mes indicado (vacío = mes en
// curso) con la tasa fiscal del usuario y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrUserNotFound      si el usuario no existe.
//   - domain.ErrInvalidInput      si el periodo no tiene formato AAAA-MM.
func (uc *ReportUseCase) DownloadMonthlyReport(
	ctx context.Context,
	userID, period string,
) (pdfBytes []byte, filename string, err error) {
	from, err := parsePeriod(period, time.Now())
	if err != nil {
		return nil, "", fmt.Errorf("%w: periodo %q, se espera AAAA-MM", domain.ErrInvalidInput, period)
	}
	to := from.AddDate(0, 1, 0)

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener usuario: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}

	sold, err := uc.itemRepo.ListSoldByUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener ventas: %w", err)
	}
	monthSales := salesInRange(sold, from, to)

	rate := analytics.TaxRate(user.ReducedTax)
	report := &MonthlyReport{
		UserName:    user.Name,
		Period:      from.Format(periodLayout),
		From:        from,
		To:          to.Add(-time.Nanosecond),
		ReducedTax:  user.ReducedTax,
		Totals:      analytics.Compute(monthSales, rate),
		Platforms:   analytics.ByPlatform(monthSales, rate),
		Top:         analytics.TopByProfit(monthSales, rate, topProductsInReport),
		GeneratedAt: time.Now(),
	}

	pdfBytes, err = uc.generator.GenerateMonthlyReportPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("informe_%s.pdf", report.Period), nil
}

// parsePeriod interpreta el mes solicitado; vacío es el mes en curso.
func parsePeriod(period string, now time.Time) (time.Time, error) {
	if period == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(periodLayout, period)
}

// salesInRange filtra las ventas con fecha dentro de [from, to).
func salesInRange(items []*entity.Item, from, to time.Time) []*entity.Item {
	out := make([]*entity.Item, 0, len(items))
	for _, it := range items {
		if it.SoldDate == nil {
			continue
		}
		if it.SoldDate.Before(from) || !it.SoldDate.Before(to) {
			continue
		}
		out = append(out, it)
	}
	return out
}
