package bst

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/commands"
	"github.com/stretchr/testify/require"
)

func benchmarkStdMapInsert(factor int, b *testing.B) {
	m := map[int]int{}
	for n := 0; n < factor*b.N; n++ {
		m[n] = n
	}
}

func BenchmarkStdMapInsert1(b *testing.B)    { benchmarkStdMapInsert(1, b) }
func BenchmarkStdMapInsert10(b *testing.B)   { benchmarkStdMapInsert(10, b) }
func BenchmarkStdMapInsert100(b *testing.B)  { benchmarkStdMapInsert(100, b) }
func BenchmarkStdMapInsert1k(b *testing.B)   { benchmarkStdMapInsert(1_000, b) }
func BenchmarkStdMapInsert10k(b *testing.B)  { benchmarkStdMapInsert(10_000, b) }
func BenchmarkStdMapInsert100k(b *testing.B) { benchmarkStdMapInsert(100_000, b) }

// shuffled keys keep the unbalanced tree at logarithmic expected height.
func shuffledKeys(n int) []int {
	return rand.New(rand.NewSource(1)).Perm(n)
}

func benchmarkTreePut(factor int, b *testing.B) {
	keys := shuffledKeys(factor * b.N)
	m := NewOrdered[int, int](nil)
	b.ResetTimer()
	for _, n := range keys {
		m.Put(n, n)
	}
}

func BenchmarkTreePut1(b *testing.B)    { benchmarkTreePut(1, b) }
func BenchmarkTreePut10(b *testing.B)   { benchmarkTreePut(10, b) }
func BenchmarkTreePut100(b *testing.B)  { benchmarkTreePut(100, b) }
func BenchmarkTreePut1k(b *testing.B)   { benchmarkTreePut(1_000, b) }
func BenchmarkTreePut10k(b *testing.B)  { benchmarkTreePut(10_000, b) }
func BenchmarkTreePut100k(b *testing.B) { benchmarkTreePut(100_000, b) }

func benchmarkTreeGet(factor int, b *testing.B) {
	keys := shuffledKeys(factor * b.N)
	m := NewOrdered[int, int](nil)
	for _, n := range keys {
		m.Put(n, n)
	}
	b.ResetTimer()
	for _, n := range keys {
		m.Get(n)
	}
}

func BenchmarkTreeGet1(b *testing.B)    { benchmarkTreeGet(1, b) }
func BenchmarkTreeGet10(b *testing.B)   { benchmarkTreeGet(10, b) }
func BenchmarkTreeGet100(b *testing.B)  { benchmarkTreeGet(100, b) }
func BenchmarkTreeGet1k(b *testing.B)   { benchmarkTreeGet(1_000, b) }
func BenchmarkTreeGet10k(b *testing.B)  { benchmarkTreeGet(10_000, b) }
func BenchmarkTreeGet100k(b *testing.B) { benchmarkTreeGet(100_000, b) }

func benchmarkTreeSelect(factor int, b *testing.B) {
	size := factor * b.N
	m := NewOrdered[int, int](nil)
	for _, n := range shuffledKeys(size) {
		m.Put(n, n)
	}
	b.ResetTimer()
	for r := 0; r < size; r++ {
		m.Select(r)
	}
}

func BenchmarkTreeSelect1(b *testing.B)   { benchmarkTreeSelect(1, b) }
func BenchmarkTreeSelect100(b *testing.B) { benchmarkTreeSelect(100, b) }
func BenchmarkTreeSelect10k(b *testing.B) { benchmarkTreeSelect(10_000, b) }

func BenchmarkExerciser(b *testing.B) {
	parameters := gopter.DefaultTestParametersWithSeed(1593228262585360000)
	parameters.MaxSize = 512
	parameters.MinSuccessfulTests = b.N
	properties := gopter.NewProperties(parameters)
	properties.Property("tree exerciser", commands.Prop(treeCommands))
	out := bytes.NewBuffer(nil)
	reporter := gopter.NewFormatedReporter(false, 98, out)
	require.True(b, properties.Run(reporter))
}
