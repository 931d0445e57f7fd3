// Package harness benchmarks and cross-validates the alphablend backends.
//
// A Harness owns one pair of canonical images. For every backend it clones
// the background, composites the foreground onto the clone, records the
// elapsed time reported by the backend and samples one output pixel. Each
// output is then compared pixel by pixel against the float reference.
//
// Backends whose capability is missing on the host are reported as
// unsupported and their scalar equivalent is run in their place.
//
//	h := harness.New(harness.WithSize(1920, 1200))
//	report, err := h.Run()
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, r := range report.Results {
//		fmt.Println(r.Kind, r.Elapsed, r.Sample)
//	}
package harness
