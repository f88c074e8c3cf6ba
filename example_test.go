package rowgo_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/rowgo"
	"github.com/hupe1980/rowgo/scalar"
)

// Example_chooseRepresentation demonstrates heuristic-driven construction.
func Example_chooseRepresentation() {
	values := []scalar.Value{
		scalar.Float(0), scalar.Float(0), scalar.Float(5), scalar.Float(0), scalar.Float(7),
	}

	row := rowgo.ChooseRepresentation(values)

	fmt.Println("length:", row.Len())
	for i, v := range row.NonZeros() {
		fmt.Println(i, v.ToNumber())
	}
	// Output:
	// length: 5
	// 2 5
	// 4 7
}

// Example_sparseFromPairs demonstrates explicit sparse construction.
func Example_sparseFromPairs() {
	row, err := rowgo.NewSparseRowFromPairs([]rowgo.Pair{
		{Index: 2, Value: scalar.Int(5)},
		{Index: 4, Value: scalar.Int(7)},
	}, 100_000, scalar.Zero)
	if err != nil {
		log.Fatal(err)
	}

	v, err := row.At(99_999)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("stored:", row.Stored())
	fmt.Println("absent:", v.ToNumber())
	// Output:
	// stored: 2
	// absent: 0
}

// Example_toVector demonstrates the explicit row-vector conversions.
func Example_toVector() {
	row := rowgo.NewDenseRow([]scalar.Value{
		scalar.Int(1), scalar.Bool(true), scalar.Float(0.5),
	})

	vec := row.ToVector()
	fmt.Println(vec)

	back := rowgo.FromVector(vec)
	fmt.Println(back.Len())
	// Output:
	// [1 1 0.5]
	// 3
}
