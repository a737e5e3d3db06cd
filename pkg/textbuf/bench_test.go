package textbuf_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/linebuf/pkg/textbuf"
)

func benchDocument(lines int) string {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		sb.WriteString("some representative line of document text\n")
	}
	return sb.String()
}

func benchmarkAddLineFront(b *testing.B, newBuf func() textbuf.TextBuffer) {
	doc := benchDocument(2000)
	buf := newBuf()
	buf.Load(doc)
	b.ResetTimer()
	for range b.N {
		if err := buf.AddLine(0, "inserted at the front"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAddLineFrontPieceTable(b *testing.B) {
	benchmarkAddLineFront(b, func() textbuf.TextBuffer { return textbuf.NewPieceTableBuffer() })
}

func BenchmarkAddLineFrontArray(b *testing.B) {
	benchmarkAddLineFront(b, func() textbuf.TextBuffer { return textbuf.NewArrayBuffer() })
}

func benchmarkEditLineMiddle(b *testing.B, newBuf func() textbuf.TextBuffer) {
	doc := benchDocument(2000)
	buf := newBuf()
	buf.Load(doc)
	b.ResetTimer()
	for range b.N {
		if err := buf.EditLine(1000, "edited middle line"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEditLineMiddlePieceTable(b *testing.B) {
	benchmarkEditLineMiddle(b, func() textbuf.TextBuffer { return textbuf.NewPieceTableBuffer() })
}

func BenchmarkEditLineMiddleArray(b *testing.B) {
	benchmarkEditLineMiddle(b, func() textbuf.TextBuffer { return textbuf.NewArrayBuffer() })
}

func benchmarkSerialize(b *testing.B, newBuf func() textbuf.TextBuffer) {
	buf := newBuf()
	buf.Load(benchDocument(2000))
	for i := 0; i < 200; i++ {
		if err := buf.EditLine(i*5, "scattered edit"); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for range b.N {
		_ = buf.Serialize()
	}
}

func BenchmarkSerializePieceTable(b *testing.B) {
	benchmarkSerialize(b, func() textbuf.TextBuffer { return textbuf.NewPieceTableBuffer() })
}

func BenchmarkSerializeArray(b *testing.B) {
	benchmarkSerialize(b, func() textbuf.TextBuffer { return textbuf.NewArrayBuffer() })
}

func BenchmarkLoadPieceTable(b *testing.B) {
	doc := benchDocument(2000)
	buf := textbuf.NewPieceTableBuffer()
	b.ResetTimer()
	for range b.N {
		buf.Load(doc)
	}
}

func BenchmarkLoadArray(b *testing.B) {
	doc := benchDocument(2000)
	buf := textbuf.NewArrayBuffer()
	b.ResetTimer()
	for range b.N {
		buf.Load(doc)
	}
}
