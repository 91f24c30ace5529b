package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/23skdu/longbow-ndarray/arrowio"
	"github.com/23skdu/longbow-ndarray/ndarray"
)

var (
	flagDims       = flag.String("dims", "256,256", "Array dimensions, comma separated (rank 1-9)")
	flagKind       = flag.String("kind", "float64", "Element kind (int8, int16, int32, int64, float32, float64)")
	flagIters      = flag.Int("iters", 100, "Number of benchmark iterations")
	flagDuration   = flag.Duration("duration", 0, "Run soak mode for specified duration (e.g. 10s, 20m)")
	flagCPUProfile = flag.String("cpuprofile", "", "Write cpu profile to file")
	flagArrow      = flag.Bool("arrow", false, "Write final rank-2 float64 array as Arrow IPC to stdout")
	flagOTel       = flag.Bool("otel", false, "Enable OpenTelemetry tracing (stdout)")
)

func parseDims(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	dims := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad dimension %q: %w", p, err)
		}
		dims = append(dims, d)
	}
	return dims, nil
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()

	flag.Parse()

	if *flagOTel {
		shutdown, err := initTracer()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer shutdown(context.Background())
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create CPU profile file")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("Could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	dims, err := parseDims(*flagDims)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad -dims")
	}

	ctx := context.Background()

	switch *flagKind {
	case "int8":
		runBench[int8](ctx, dims)
	case "int16":
		runBench[int16](ctx, dims)
	case "int32":
		runBench[int32](ctx, dims)
	case "int64":
		runBench[int64](ctx, dims)
	case "float32":
		runBench[float32](ctx, dims)
	case "float64":
		runBench[float64](ctx, dims)
	default:
		log.Fatal().Str("kind", *flagKind).Msg("Unknown element kind")
	}

	if *flagArrow {
		if *flagKind != "float64" || len(dims) != 2 {
			log.Fatal().Msg("-arrow requires -kind float64 and rank-2 -dims")
		}
		a, err := ndarray.New[float64](dims...)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create array")
		}
		a.Fill(1.0)
		a.Scale(2.0)
		if err := writeArrowStream(os.Stdout, a); err != nil {
			log.Warn().Err(err).Msg("Failed to write arrow stream")
		}
	}
}

// runBench exercises the bulk operations the engine is built around: create,
// fill, scale, slice the last axis, reduce. The span brackets the measured
// loop only, not flag parsing or logging setup.
func runBench[T ndarray.Number](ctx context.Context, dims []int) {
	_, span := otel.Tracer("ndbench").Start(ctx, "bench.run")
	defer span.End()

	n := ndarray.Shape(dims).NumElements()
	log.Info().
		Str("kind", ndarray.KindOf[T]().String()).
		Ints("dims", dims).
		Int("elements", n).
		Msg("Starting benchmark")

	iterate := func() float64 {
		a, err := ndarray.New[T](dims...)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create array")
		}
		a.Fill(T(1))
		a.Incr(T(1))
		a.Scale(T(2))
		if a.Rank() > 1 {
			view, err := a.Slice(-1, -1)
			if err != nil {
				log.Fatal().Err(err).Msg("Slice failed")
			}
			view.Scale(T(2))
		}
		return a.Sum()
	}

	if *flagDuration > 0 {
		log.Info().Str("duration", flagDuration.String()).Msg("Starting soak run")
		startTime := time.Now()
		endTime := startTime.Add(*flagDuration)
		var totalElems int64
		var iter int

		for time.Now().Before(endTime) {
			_ = iterate()
			totalElems += int64(n)
			iter++

			if iter%100 == 0 {
				elapsed := time.Since(startTime)
				eps := float64(totalElems) / elapsed.Seconds()
				log.Info().
					Str("elapsed", elapsed.Round(time.Second).String()).
					Int("iter", iter).
					Int64("total_elements", totalElems).
					Float64("eps", eps).
					Msg("Soak progress")
			}
		}

		totalElapsed := time.Since(startTime)
		log.Info().
			Int("iters", iter).
			Dur("total_time", totalElapsed).
			Float64("avg_eps", float64(totalElems)/totalElapsed.Seconds()).
			Msg("Soak complete")
		return
	}

	start := time.Now()
	var last float64
	for i := 0; i < *flagIters; i++ {
		last = iterate()
	}
	elapsed := time.Since(start)
	log.Info().
		Int("iters", *flagIters).
		Dur("elapsed", elapsed).
		Float64("checksum", last).
		Float64("eps", float64(int64(n)*int64(*flagIters))/elapsed.Seconds()).
		Msg("Benchmark complete")
}

func writeArrowStream(w *os.File, a *ndarray.Dense[float64]) error {
	pool := memory.NewGoAllocator()
	rec, err := arrowio.ToRecord(pool, a)
	if err != nil {
		return err
	}
	defer rec.Release()

	writer := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()))
	if err := writer.Write(rec); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

func initTracer() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("ndbench"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}
