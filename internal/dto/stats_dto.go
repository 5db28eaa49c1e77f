package dto

type VerificationStats struct {
	Verified   int64 `json:"verified"`
	Unverified int64 `json:"unverified"`
}

type StatisticsResponse struct {
	TotalRegistrations        int64             `json:"totalRegistrations"`
	VerificationStats         VerificationStats `json:"verificationStats"`
	GenderDistribution        map[string]int64  `json:"genderDistribution"`
	CitiesByRegistrations     map[string]int64  `json:"citiesByRegistrations"`
	MaritalStatusDistribution map[string]int64  `json:"maritalStatusDistribution"`
	NativePlaceDistribution   map[string]int64  `json:"nativePlaceDistribution"`
	AgeDistribution           map[string]int64  `json:"ageDistribution"`
}

// CityStatsResponse backs the lightweight per-city dashboard widget.
type CityStatsResponse struct {
	TotalEntries int64            `json:"totalEntries"`
	CityCount    *int64           `json:"cityCount"`
	CityCounts   map[string]int64 `json:"cityCounts"`
}
