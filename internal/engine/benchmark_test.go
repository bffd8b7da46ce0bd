package engine

import "testing"

// Benchmarks mirroring the teacher's own ProcessKey/backspace/preedit
// benchmarks, restated against the new Engine/EditCommand shape.

func BenchmarkProcessKey(b *testing.B) {
	eng := New(MethodTelex, DefaultOptions(), nil, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.ProcessKey(KeyT, false, false)
		if i%10 == 0 {
			eng.Reset()
		}
	}
}

func BenchmarkProcessKeyVietnameseWord(b *testing.B) {
	// "được": d d u w o w c j
	keys := []KeyCode{KeyD, KeyD, KeyU, KeyW, KeyO, KeyW, KeyC, KeyJ}
	eng := New(MethodTelex, DefaultOptions(), nil, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			eng.ProcessKey(k, false, false)
		}
		eng.Reset()
	}
}

func BenchmarkParse(b *testing.B) {
	buf := bufferFromKeys(KeyN, KeyG, KeyH, KeyI, KeyE, KeyN, KeyG)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse(buf)
	}
}

func BenchmarkValidate(b *testing.B) {
	buf := bufferFromKeys(KeyN, KeyG, KeyH, KeyI, KeyE, KeyN, KeyG)
	syl := Parse(buf)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Validate(buf, syl)
	}
}

func BenchmarkPreedit(b *testing.B) {
	eng := New(MethodTelex, DefaultOptions(), nil, nil)
	for _, k := range []KeyCode{KeyD, KeyD, KeyU, KeyW, KeyO, KeyW, KeyC, KeyJ} {
		eng.ProcessKey(k, false, false)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.Preedit()
	}
}

func BenchmarkBackspace(b *testing.B) {
	eng := New(MethodTelex, DefaultOptions(), nil, nil)
	keys := []KeyCode{KeyN, KeyG, KeyH, KeyI, KeyE, KeyN, KeyG}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			eng.ProcessKey(k, false, false)
		}
		for j := 0; j < len(keys); j++ {
			eng.ProcessKey(KeyDelete, false, false)
		}
	}
}
