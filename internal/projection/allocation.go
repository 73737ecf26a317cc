package projection

// Contribution limits of the tax-advantaged account.
const (
	LifetimeCap      = 18_000_000.0
	AnnualRegularCap = 1_200_000.0
	AnnualGrowthCap  = 2_400_000.0
	AnnualCap        = AnnualRegularCap + AnnualGrowthCap
)

// TaxRate applies to taxable investment gains.
const TaxRate = 0.20315

// allocator tracks remaining tax-advantaged room. Annual room is reset by
// newYear; lifetime room never comes back.
type allocator struct {
	enabled     bool
	used        float64
	yearUsed    float64
	regularRoom float64
	growthRoom  float64
}

func newAllocator(enabled bool, alreadyUsed float64) *allocator {
	a := &allocator{enabled: enabled, used: clamp(alreadyUsed, 0, LifetimeCap)}
	a.newYear()
	return a
}

func (a *allocator) newYear() {
	a.yearUsed = 0
	a.regularRoom = AnnualRegularCap
	a.growthRoom = AnnualGrowthCap
}

// allocate splits a month's contribution between the tax-advantaged and
// taxable buckets. The regular amount draws on the regular sub-cap and the
// lump sum on the growth sub-cap; both share the lifetime cap.
func (a *allocator) allocate(regular, lumpSum float64) (advantaged, taxable float64) {
	if !a.enabled {
		return 0, regular + lumpSum
	}

	take := func(amount float64, room *float64) float64 {
		n := min(amount, LifetimeCap-a.used, *room)
		if n < 0 {
			n = 0
		}
		*room -= n
		a.used += n
		a.yearUsed += n
		return n
	}

	r := take(regular, &a.regularRoom)
	l := take(lumpSum, &a.growthRoom)

	advantaged = r + l
	taxable = regular + lumpSum - advantaged
	return advantaged, taxable
}
