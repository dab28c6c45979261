package registry

import "marine-platform/internal/models"

// Annual mean Gulf of Maine SST (NOAA ERSST v5, 42-44.5N / 66-70W) and
// anomalies relative to the 1901-2000 baseline. One record per year,
// 1982 through 2024.
func buildTemperatureData() []models.TemperatureRecord {
	sst := []float64{
		9.8, 10.1, 9.7, 9.5, 9.9, 10.4, 10.0, 9.6, 10.5, 10.3,
		9.8, 10.0, 10.2, 10.1, 9.7, 10.3, 10.8, 10.9, 10.4, 10.6,
		10.9, 10.5, 10.4, 10.8, 11.0, 10.9, 10.7, 10.8, 11.2, 11.0,
		11.8, 11.3, 11.1, 11.6, 12.0, 11.4, 11.2, 11.5, 11.7, 11.9,
		12.1, 12.3, 12.0,
	}
	anomaly := []float64{
		-0.5, -0.2, -0.6, -0.8, -0.4, 0.1, -0.3, -0.7, 0.2, 0.0,
		-0.5, -0.3, -0.1, -0.2, -0.6, 0.0, 0.5, 0.6, 0.1, 0.3,
		0.6, 0.2, 0.1, 0.5, 0.7, 0.6, 0.4, 0.5, 0.9, 0.7,
		1.5, 1.0, 0.8, 1.3, 1.7, 1.1, 0.9, 1.2, 1.4, 1.6,
		1.8, 2.0, 1.7,
	}
	records := make([]models.TemperatureRecord, len(sst))
	for i := range sst {
		records[i] = models.TemperatureRecord{
			Year:           1982 + i,
			SSTCelsius:     sst[i],
			AnomalyCelsius: anomaly[i],
		}
	}
	return records
}

// Regional lobster landings (Maine DMR; Southern New England = CT, RI, NY
// combined) with Maine dockside value and SNE mean bottom temperature.
// The year axis is irregular: not every year was compiled.
func buildLandingsData() []models.LandingsRecord {
	f := func(v float64) *float64 { return &v }
	return []models.LandingsRecord{
		{Year: 1990, MaineMillionsLbs: 28, SNEMillionsLbs: 22, MaineValueM: 138, SNEBottomTempC: f(14.2)},
		{Year: 1993, MaineMillionsLbs: 31, SNEMillionsLbs: 20, MaineValueM: 155, SNEBottomTempC: f(14.5)},
		{Year: 1995, MaineMillionsLbs: 36, SNEMillionsLbs: 18, MaineValueM: 185, SNEBottomTempC: f(14.8)},
		{Year: 1998, MaineMillionsLbs: 47, SNEMillionsLbs: 16, MaineValueM: 225, SNEBottomTempC: f(15.1)},
		{Year: 2000, MaineMillionsLbs: 57, SNEMillionsLbs: 15, MaineValueM: 280, SNEBottomTempC: f(15.5)},
		{Year: 2002, MaineMillionsLbs: 63, SNEMillionsLbs: 13, MaineValueM: 310, SNEBottomTempC: f(16.0)},
		{Year: 2005, MaineMillionsLbs: 69, SNEMillionsLbs: 10, MaineValueM: 340, SNEBottomTempC: f(16.3)},
		{Year: 2007, MaineMillionsLbs: 82, SNEMillionsLbs: 9, MaineValueM: 400, SNEBottomTempC: f(16.8)},
		{Year: 2010, MaineMillionsLbs: 96, SNEMillionsLbs: 8, MaineValueM: 460, SNEBottomTempC: f(17.2)},
		{Year: 2012, MaineMillionsLbs: 127, SNEMillionsLbs: 6, MaineValueM: 545, SNEBottomTempC: f(17.8)},
		{Year: 2013, MaineMillionsLbs: 128, SNEMillionsLbs: 5, MaineValueM: 564, SNEBottomTempC: f(17.5)},
		{Year: 2014, MaineMillionsLbs: 124, SNEMillionsLbs: 4, MaineValueM: 557, SNEBottomTempC: f(17.9)},
		{Year: 2015, MaineMillionsLbs: 121, SNEMillionsLbs: 3.5, MaineValueM: 495, SNEBottomTempC: f(18.1)},
		{Year: 2016, MaineMillionsLbs: 132, SNEMillionsLbs: 3, MaineValueM: 533, SNEBottomTempC: f(18.4)},
		{Year: 2017, MaineMillionsLbs: 111, SNEMillionsLbs: 2.8, MaineValueM: 434, SNEBottomTempC: f(18.0)},
		{Year: 2018, MaineMillionsLbs: 119, SNEMillionsLbs: 2.5, MaineValueM: 485, SNEBottomTempC: f(18.3)},
		{Year: 2019, MaineMillionsLbs: 101, SNEMillionsLbs: 2.2, MaineValueM: 389, SNEBottomTempC: f(18.5)},
		{Year: 2020, MaineMillionsLbs: 96, SNEMillionsLbs: 2.0, MaineValueM: 405, SNEBottomTempC: f(18.7)},
		{Year: 2021, MaineMillionsLbs: 108, SNEMillionsLbs: 1.8, MaineValueM: 730, SNEBottomTempC: f(19.0)},
		{Year: 2022, MaineMillionsLbs: 98, SNEMillionsLbs: 1.6, MaineValueM: 568, SNEBottomTempC: f(19.2)},
		{Year: 2023, MaineMillionsLbs: 93, SNEMillionsLbs: 1.5, MaineValueM: 505, SNEBottomTempC: f(19.4)},
	}
}

// Ecosystem-level indicators, 2000-2024. Calanus index is normalized to
// 2000 = 100; richness indices count species observed per survey year.
func buildEcosystemData() []models.EcosystemRecord {
	calanus := []float64{
		100, 95, 98, 92, 88, 85, 80, 78, 72, 68,
		60, 55, 50, 48, 45, 42, 40, 38, 35, 33,
		30, 28, 32, 29, 27,
	}
	warm := []float64{
		8, 9, 8, 10, 11, 12, 13, 14, 15, 16,
		18, 19, 21, 22, 24, 25, 27, 28, 30, 31,
		33, 34, 35, 36, 37,
	}
	cold := []float64{
		42, 41, 42, 40, 39, 38, 37, 36, 35, 34,
		32, 31, 30, 29, 28, 27, 26, 25, 24, 23,
		22, 21, 22, 21, 20,
	}
	heatwave := []float64{
		5, 8, 3, 10, 12, 15, 18, 20, 22, 25,
		30, 35, 80, 40, 28, 45, 55, 38, 42, 60,
		65, 70, 50, 72, 58,
	}
	whales := []float64{
		120, 115, 110, 105, 100, 95, 90, 85, 75, 70,
		65, 55, 50, 45, 40, 35, 30, 28, 25, 22,
		20, 18, 22, 20, 18,
	}
	records := make([]models.EcosystemRecord, len(calanus))
	for i := range calanus {
		records[i] = models.EcosystemRecord{
			Year:                  2000 + i,
			CalanusAbundanceIndex: calanus[i],
			WarmSpeciesRichness:   warm[i],
			ColdSpeciesRichness:   cold[i],
			MarineHeatwaveDays:    heatwave[i],
			RightWhaleSightings:   whales[i],
		}
	}
	return records
}
