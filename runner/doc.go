// Package runner executes maze runs end to end: it builds a grid, carves it
// with the selected generator, analyzes the result and instruments the run.
//
// A Runner is the only place in the module that logs or records metrics;
// grid, generator and analyzer stay silent and return errors instead.
//
//	m := runner.NewMetrics(nil)
//	r := runner.New(runner.WithLogger(logger), runner.WithMetrics(m))
//	res, err := r.Run(ctx, runner.Params{Width: 20, Height: 10, Method: generator.MethodDFS})
//
// Compare repeats Run for every algorithm with consecutive seeds and
// averages the reports into one Summary per algorithm.
//
// Metrics live in their own prometheus.Registry and can be dumped to a
// node-exporter textfile with Metrics.WriteTextfile.
package runner
