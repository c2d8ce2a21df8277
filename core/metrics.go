package core

import (
	"math"

	"github.com/alutools/dieprofile/schema"
)

// Physical constants used by the metrics calculator.
const (
	AluminiumDensityKgM3 = 2700.0 // kg/m³
	MmPerInch            = 25.4
	mm2PerM2             = 1_000_000.0
)

// ComputeMetrics derives the geometric quantities of a profile.
// Every ratio with a zero denominator is 0; nothing here fails.
func ComputeMetrics(in schema.ProfileInput) schema.DerivedMetrics {
	var m schema.DerivedMetrics

	m.TongueRatio = safeDiv(in.SlotDepthMm, in.SlotOpeningWidthMm)

	// Weight per metre over density gives the section in m², scaled to mm².
	m.ProfileAreaMm2 = in.WeightKgPerM / AluminiumDensityKgM3 * mm2PerM2
	m.WeightInDieKgPerM = in.WeightKgPerM * float64(in.CavityCount)
	m.PerimeterOverArea = safeDiv(in.PerimeterMm, m.ProfileAreaMm2)

	m.ContainerDiameterMm = in.PressSizeInch * MmPerInch
	m.ContainerAreaMm2 = math.Pi * math.Pow(m.ContainerDiameterMm/2, 2)

	// CD/wall uses the CD typed by the user, not the press bore above.
	m.CDOverWall = safeDiv(in.ContainerDiameterMm, in.WallThicknessMm)

	if m.ProfileAreaMm2 > 0 {
		m.ExtrusionRatio = m.ContainerAreaMm2 / (m.ProfileAreaMm2 * float64(in.CavityCount))
	}
	if math.IsNaN(m.ExtrusionRatio) || math.IsInf(m.ExtrusionRatio, 0) {
		m.ExtrusionRatio = 0
	}

	return m
}

// safeDiv returns num/den, or 0 when den is not positive.
func safeDiv(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return 0
}
