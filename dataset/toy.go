package dataset

// Toy returns the 8-row walkthrough dataset. Fitting it with OLS and an
// intercept yields the line y = x, with RSS = 8, TSS = 18 and R² = 5/9.
func Toy() *SampleSet {
	s, err := FromSlices(
		[]float64{1, 2, 3, 4, 1, 2, 3, 4},
		[]float64{2, 1, 4, 3, 0, 3, 2, 5},
	)
	if err != nil {
		panic(err) // static data, cannot fail
	}
	return s
}

// ToyDescending returns the 4-row variant with a descending trend
// (y = 8 - toy y over the first half of the x values). Fitting it without an
// intercept produces a visibly worse, possibly negative, R² than fitting it
// with one.
func ToyDescending() *SampleSet {
	s, err := FromSlices(
		[]float64{1, 2, 3, 4},
		[]float64{7, 6, 4, 3},
	)
	if err != nil {
		panic(err) // static data, cannot fail
	}
	return s
}
