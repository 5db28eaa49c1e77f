package services

import (
	"context"
	"fmt"
	"time"

	"github.com/samajseva/registration-backend/internal/dto"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type StatsService struct {
	db    *gorm.DB
	table string
	now   func() time.Time
}

func NewStatsService(db *gorm.DB, table string) *StatsService {
	return &StatsService{db: db, table: table, now: time.Now}
}

type countRow struct {
	Name  string
	Count int64
}

// Statistics computes the descriptive aggregates over the registration set,
// optionally filtered by gender (case-insensitive exact match). The sub-queries
// are read-only and independent, so they run concurrently; any failure aborts
// the whole response.
func (s *StatsService) Statistics(ctx context.Context, gender string) (*dto.StatisticsResponse, error) {
	stats := &dto.StatisticsResponse{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.filtered(gctx, gender).Count(&stats.TotalRegistrations).Error; err != nil {
			return fmt.Errorf("total count failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.filtered(gctx, gender).Where("verified = ?", true).Count(&stats.VerificationStats.Verified).Error; err != nil {
			return fmt.Errorf("verification count failed: %w", err)
		}
		return nil
	})

	// The gender breakdown intentionally covers the whole set even when the
	// caller drills into one gender.
	g.Go(func() error {
		var err error
		stats.GenderDistribution, err = s.groupedCounts(gctx, "", "LOWER(gender)", "gender")
		return err
	})

	g.Go(func() error {
		var err error
		stats.CitiesByRegistrations, err = s.groupedCounts(gctx, gender, "city", "city")
		return err
	})

	g.Go(func() error {
		var err error
		stats.MaritalStatusDistribution, err = s.groupedCounts(gctx, gender, "marital_status", "marital_status")
		return err
	})

	g.Go(func() error {
		var err error
		stats.NativePlaceDistribution, err = s.groupedCounts(gctx, gender, "native_place", "native_place")
		return err
	})

	g.Go(func() error {
		var err error
		stats.AgeDistribution, err = s.ageDistribution(gctx, gender)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.VerificationStats.Unverified = stats.TotalRegistrations - stats.VerificationStats.Verified
	return stats, nil
}

// CityStats backs the per-city dashboard widget: the overall total, the count
// per city, and the count for the requested city if one was given.
func (s *StatsService) CityStats(ctx context.Context, city string) (*dto.CityStatsResponse, error) {
	resp := &dto.CityStatsResponse{}

	query := s.db.WithContext(ctx).Table(s.table)
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if err := query.Count(&resp.TotalEntries).Error; err != nil {
		return nil, fmt.Errorf("total count failed: %w", err)
	}

	counts, err := s.groupedCounts(ctx, "", "city", "city")
	if err != nil {
		return nil, err
	}
	resp.CityCounts = counts

	if city != "" {
		n := counts[city]
		resp.CityCount = &n
	}
	return resp, nil
}

func (s *StatsService) filtered(ctx context.Context, gender string) *gorm.DB {
	query := s.db.WithContext(ctx).Table(s.table)
	if gender != "" {
		query = query.Where("LOWER(gender) = LOWER(?)", gender)
	}
	return query
}

func (s *StatsService) groupedCounts(ctx context.Context, gender, expr, column string) (map[string]int64, error) {
	var rows []countRow
	err := s.filtered(ctx, gender).
		Select(expr+" AS name, COUNT(*) AS count").
		Where(column+" IS NOT NULL").
		Group(expr).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("grouped count on %s failed: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Name] = r.Count
	}
	return counts, nil
}

func (s *StatsService) ageDistribution(ctx context.Context, gender string) (map[string]int64, error) {
	var birthdays []time.Time
	err := s.filtered(ctx, gender).
		Where("birthday IS NOT NULL").
		Pluck("birthday", &birthdays).Error
	if err != nil {
		return nil, fmt.Errorf("birthday fetch failed: %w", err)
	}

	today := s.now()
	counts := make(map[string]int64)
	for _, b := range birthdays {
		counts[ageBucket(b, today)]++
	}
	return counts, nil
}

// ageBucket derives the named age range from the exact calendar age at the
// given date: the year difference drops by one if today's month/day precedes
// the birth month/day.
func ageBucket(birthday, today time.Time) string {
	age := today.Year() - birthday.Year()
	if today.Month() < birthday.Month() ||
		(today.Month() == birthday.Month() && today.Day() < birthday.Day()) {
		age--
	}

	switch {
	case age < 18:
		return "Under 18"
	case age < 25:
		return "18-24"
	case age < 35:
		return "25-34"
	case age < 45:
		return "35-44"
	case age < 55:
		return "45-54"
	case age < 65:
		return "55-64"
	default:
		return "65+"
	}
}
