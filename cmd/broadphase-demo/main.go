package main

import (
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/flatbroadphase/layer"
	"github.com/flatbroadphase/layer/geom"
	"github.com/flatbroadphase/layer/morton"
	"github.com/golang/geo/r2"
)

var systemBounds = geom.Bounds2{
	Min: r2.Point{X: 0, Y: 0},
	Max: r2.Point{X: 1 << 16, Y: 1 << 16},
}

func main() {
	prng := rand.New(rand.NewPCG(42, 42))
	log.SetFlags(log.Lmicroseconds)

	l := layer.New[morton.Index2D, uint64](
		layer.WithMinDepth[morton.Index2D, uint64](4),
		layer.WithIndexCapacity[morton.Index2D, uint64](4_000),
	)

	ts := time.Now()
	layer.Extend(l, systemBounds, morton.Generator2D{}, randomObjects(prng, 1_000))
	log.Printf("extend with 1000 objects: %v, len: %d", time.Since(ts), l.Len())

	var mu sync.Mutex
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			mu.Lock()
			n := l.Len()
			mu.Unlock()
			log.Printf("Layer.Len(): %d", n)
			time.Sleep(time.Second)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			mu.Lock()
			pairs := layer.ParScan(l)
			log.Printf("ParScan(): %d colliding pairs", len(pairs))
			mu.Unlock()
			time.Sleep(time.Second)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			mu.Lock()
			layer.Extend(l, systemBounds, morton.Generator2D{}, randomObjects(prng, 100))
			mu.Unlock()
			time.Sleep(time.Second)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			time.Sleep(5 * time.Second)
			mu.Lock()
			l.Clear()
			mu.Unlock()
			log.Printf("Layer.Clear(): reset to empty")
		}
	}()

	wg.Wait()
}

var nextID uint64

func randomObjects(prng *rand.Rand, n int) []layer.ObjectBounds[geom.Bounds2, uint64] {
	out := make([]layer.ObjectBounds[geom.Bounds2, uint64], n)
	for i := range out {
		cx := prng.Float64() * systemBounds.Max.X
		cy := prng.Float64() * systemBounds.Max.Y
		half := 1.0 + prng.Float64()*32.0

		nextID++
		out[i] = layer.ObjectBounds[geom.Bounds2, uint64]{
			Bounds: geom.Bounds2{
				Min: r2.Point{X: cx - half, Y: cy - half},
				Max: r2.Point{X: cx + half, Y: cy + half},
			},
			ID: nextID,
		}
	}
	return out
}
