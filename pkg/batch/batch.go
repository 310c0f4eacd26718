// Package batch parte listas grandes en lotes acotados y los procesa en olas:
// dentro de una ola todo se lanza en paralelo, entre olas se espera una pausa
// fija para no saturar el backend con ráfagas de consultas.
package batch

import (
	"context"
	"sync"
	"time"
)

// Chunk parte items en lotes ordenados de a lo sumo size elementos.
// La concatenación de los lotes es exactamente la entrada; ningún lote queda
// vacío salvo que la entrada esté vacía (cero lotes). size <= 0 produce un
// único lote con toda la entrada.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{items}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// ProcessInWaves procesa items en olas de a lo sumo waveSize elementos.
// Dentro de cada ola fn se ejecuta en una goroutine por elemento; se espera a
// toda la ola antes de pasar a la siguiente, con una pausa de delay entre olas.
// fn recibe el índice global del elemento para que el caller escriba resultados
// por posición sin coordinar acceso. Se corta anticipadamente si ctx se cancela.
func ProcessInWaves[T any](ctx context.Context, items []T, waveSize int, delay time.Duration, fn func(i int, item T)) error {
	offset := 0
	waves := Chunk(items, waveSize)
	for w, wave := range waves {
		if err := ctx.Err(); err != nil {
			return err
		}

		var wg sync.WaitGroup
		for j, item := range wave {
			wg.Add(1)
			go func(i int, it T) {
				defer wg.Done()
				fn(i, it)
			}(offset+j, item)
		}
		wg.Wait()
		offset += len(wave)

		// Pausa entre olas, nunca después de la última
		if delay > 0 && w < len(waves)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil
}
