package hypergo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/hypergo"
	"github.com/hupe1980/hypergo/blobstore"
	"github.com/hupe1980/hypergo/codec"
	"github.com/hupe1980/hypergo/model"
	"github.com/hupe1980/hypergo/persistence"
)

func Example() {
	ctx := context.Background()
	provider := hypergo.New()

	graph := &model.Graph{
		Nodes: []model.Vector{{0.1, 0.2}, {0.3, 0.1}, {0.0, 0.4}},
		Edges: []model.Edge{{Source: 0, Target: 1}, {Source: 1, Target: 2}},
	}

	points, err := provider.GenerateEmbeddings(ctx, graph)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(points), len(points[0]))
	// Output: 3 3
}

func ExampleProvider_Distance() {
	provider := hypergo.New()

	a, _ := provider.Project(model.Vector{0.5, 0.3, 0.8})
	b, _ := provider.Project(model.Vector{0.1, 0.1, 0.1})

	d, err := provider.Distance(a, b)
	if err != nil {
		panic(err)
	}

	fmt.Println(d > 0)
	// Output: true
}

func ExampleProvider_EncodeEmbeddings() {
	provider := hypergo.New(hypergo.WithCodec(codec.Binary{}))

	data, err := provider.EncodeEmbeddings([]model.Vector{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
	})
	if err != nil {
		panic(err)
	}

	embeddings, err := provider.DecodeEmbeddings(data)
	if err != nil {
		panic(err)
	}

	for _, e := range embeddings {
		fmt.Println(e.ID, e.Vector)
	}
	// Output:
	// 0 [0.1 0.2 0.3]
	// 1 [0.4 0.5 0.6]
}

func Example_persistence() {
	ctx := context.Background()
	store := persistence.New(blobstore.NewMemoryStore(), codec.Zstd{})

	if err := store.Save(ctx, "nouns.bin", []model.Vector{{0.1, 0.2}, {0.3, 0.4}}); err != nil {
		panic(err)
	}

	embeddings, err := store.Load(ctx, "nouns.bin")
	if err != nil {
		panic(err)
	}

	fmt.Println(len(embeddings))
	// Output: 2
}
