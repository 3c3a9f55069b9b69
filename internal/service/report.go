package service

import (
	"context"
	"sort"
	"strings"

	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/repository"
)

type reportService struct {
	vehicleRepo     repository.VehicleRepository
	reservationRepo repository.ReservationRepository
}

func NewReportService(vehicleRepo repository.VehicleRepository, reservationRepo repository.ReservationRepository) ReportService {
	return &reportService{
		vehicleRepo:     vehicleRepo,
		reservationRepo: reservationRepo,
	}
}

// AvailabilityReport counts the fleet by status and sums reservation revenue
// per brand, most profitable brand first.
func (s *reportService) AvailabilityReport(ctx context.Context) (*AvailabilityReport, error) {
	vehicles, err := s.vehicleRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	revenueByVehicle := make(map[int32]int32, len(vehicles))
	for _, rv := range reservations {
		revenueByVehicle[rv.VehicleID] += rv.TotalCents
	}

	report := &AvailabilityReport{TotalVehicles: int32(len(vehicles))}
	type brandTotals struct {
		count   int32
		revenue int32
	}
	byBrand := make(map[string]*brandTotals)

	for _, v := range vehicles {
		switch v.Status {
		case domain.VehicleStatusAvailable:
			report.Available++
		case domain.VehicleStatusReserved:
			report.Reserved++
		case domain.VehicleStatusMaintenance:
			report.Maintenance++
		case domain.VehicleStatusOutOfService:
			report.OutOfService++
		}

		revenue := revenueByVehicle[v.ID]
		if revenue == 0 {
			continue
		}
		report.TotalRevenueCents += revenue
		bt := byBrand[v.Brand]
		if bt == nil {
			bt = &brandTotals{}
			byBrand[v.Brand] = bt
		}
		bt.count++
		bt.revenue += revenue
	}

	report.RevenueByBrand = make([]BrandRevenue, 0, len(byBrand))
	for brand, bt := range byBrand {
		report.RevenueByBrand = append(report.RevenueByBrand, BrandRevenue{
			Brand:        brand,
			Count:        bt.count,
			RevenueCents: bt.revenue,
		})
	}
	sort.Slice(report.RevenueByBrand, func(i, j int) bool {
		a, b := report.RevenueByBrand[i], report.RevenueByBrand[j]
		if a.RevenueCents != b.RevenueCents {
			return a.RevenueCents > b.RevenueCents
		}
		return a.Brand < b.Brand
	})

	return report, nil
}

// TopReservedBrands returns the share each brand holds among currently
// reserved vehicles, largest first. Brand names are compared
// case-insensitively.
func (s *reportService) TopReservedBrands(ctx context.Context) ([]BrandShare, error) {
	vehicles, err := s.vehicleRepo.List(ctx, domain.VehicleStatusReserved)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int32)
	var total int32
	for _, v := range vehicles {
		brand := strings.ToLower(v.Brand)
		counts[brand]++
		total++
	}
	if total == 0 {
		return []BrandShare{}, nil
	}

	shares := make([]BrandShare, 0, len(counts))
	for brand, count := range counts {
		shares = append(shares, BrandShare{
			Brand:      brand,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Brand < shares[j].Brand
	})
	return shares, nil
}
