package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Reventa-api/internal/application/dto"
	"github.com/jhoicas/Reventa-api/internal/domain"
	"github.com/jhoicas/Reventa-api/internal/domain/entity"
	"github.com/jhoicas/Reventa-api/internal/domain/repository"
)

// Ventanas del dashboard.
const (
	monthsWindow   = 12
	weeksWindow    = 12
	topProductsN   = 5
	cumulativeDays = 30
)

// DashboardUseCase fachada de analítica: una sola lectura de todas las ventas
// finalizadas del usuario y cinco vistas calculadas en memoria. Sin estado
// entre peticiones; cualquier error upstream aborta la llamada completa.
type DashboardUseCase struct {
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
}

// NewDashboardUseCase construye la fachada.
func NewDashboardUseCase(userRepo repository.UserRepository, itemRepo repository.ItemRepository) *DashboardUseCase {
	return &DashboardUseCase{userRepo: userRepo, itemRepo: itemRepo}
}

// GetDashboard carga el usuario (para el flag de régimen reducido) y todas sus
// ventas finalizadas, y compone la respuesta. Un usuario sin ventas recibe
// estructuras en cero, nunca null.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, userID string) (*dto.DashboardDTO, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: cargar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	items, err := uc.itemRepo.ListSoldByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: cargar ventas: %w", err)
	}

	return BuildDashboard(items, user.ReducedTax, time.Now()), nil
}

// BuildDashboard compone el dashboard completo a partir de las ventas
// finalizadas. Función pura: mismo conjunto de ventas, misma salida.
func BuildDashboard(items []*entity.Item, reducedTax bool, now time.Time) *dto.DashboardDTO {
	rate := TaxRate(reducedTax)
	sold := onlySold(items)

	months := PerBucket(MonthBuckets(sold, monthsWindow, now), rate)
	weeks := PerBucket(WeekBuckets(sold, weeksWindow, now), rate)
	top := TopByProfit(sold, rate, topProductsN)
	platforms := ByPlatform(sold, rate)
	cumulative := CumulativeByDay(sold, rate, cumulativeDays, now)
	totals := Compute(sold, rate)

	return &dto.DashboardDTO{
		RevenueByMonth:        toPoints(months),
		RevenueByWeek:         toPoints(weeks),
		TopProducts:           toTopProducts(top),
		SalesByPlatform:       toPlatformStats(platforms),
		ProfitabilityOverTime: toProfitPoints(cumulative),
		TotalRevenue:          totals.Revenue.Round(2),
		TotalCost:             totals.Cost.Round(2),
		TotalTax:              totals.Tax.Round(2),
		TotalProfit:           totals.Profit.Round(2),
		TotalSales:            totals.SalesCount,
		AverageMargin:         totals.Margin.Round(2),
	}
}

// onlySold filtra defensivamente: el repositorio ya trae solo estado sold,
// pero la fachada también se invoca con conjuntos arbitrarios (reportes, tests).
func onlySold(items []*entity.Item) []*entity.Item {
	sold := make([]*entity.Item, 0, len(items))
	for _, it := range items {
		if it.IsSold() {
			sold = append(sold, it)
		}
	}
	return sold
}

func toPoints(buckets []BucketAggregate) []dto.DashboardPointDTO {
	out := make([]dto.DashboardPointDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.DashboardPointDTO{
			Period:     b.Label,
			Revenue:    b.Revenue.Round(2),
			Cost:       b.Cost.Round(2),
			Tax:        b.Tax.Round(2),
			Profit:     b.Profit.Round(2),
			Margin:     b.Margin.Round(2),
			SalesCount: b.SalesCount,
		})
	}
	return out
}

func toTopProducts(ranked []ItemProfit) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(ranked))
	for _, r := range ranked {
		platform := r.Item.Platform
		if platform == "" {
			platform = OtherPlatform
		}
		soldDate := ""
		if r.Item.SoldDate != nil {
			soldDate = r.Item.SoldDate.Format("2006-01-02")
		}
		out = append(out, dto.TopProductDTO{
			ItemID:    r.Item.ID,
			Name:      r.Item.Name,
			Brand:     r.Item.Brand,
			Platform:  platform,
			SoldDate:  soldDate,
			SoldPrice: r.Item.SoldPrice.Round(2),
			Cost:      r.Cost.Round(2),
			Tax:       r.Tax.Round(2),
			Profit:    r.Profit.Round(2),
		})
	}
	return out
}

func toPlatformStats(groups []PlatformAggregate) []dto.PlatformStatsDTO {
	out := make([]dto.PlatformStatsDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.PlatformStatsDTO{
			Platform:     g.Platform,
			SalesCount:   g.SalesCount,
			Revenue:      g.Revenue.Round(2),
			Cost:         g.Cost.Round(2),
			Tax:          g.Tax.Round(2),
			Profit:       g.Profit.Round(2),
			Margin:       g.Margin.Round(2),
			AveragePrice: g.AveragePrice.Round(2),
		})
	}
	return out
}

func toProfitPoints(points []CumulativePoint) []dto.ProfitPointDTO {
	out := make([]dto.ProfitPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.ProfitPointDTO{
			Date:    p.Date,
			Revenue: p.Revenue.Round(2),
			Cost:    p.Cost.Round(2),
			Profit:  p.Profit.Round(2),
			Margin:  p.Margin.Round(2),
		})
	}
	return out
}
