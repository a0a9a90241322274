package records

import (
	"encoding/json"
	"testing"

	"github.com/kungfusheep/ferry"
)

func benchPacket() Packet {
	weight := 0.5
	port := uint16(443)
	payload := make([]byte, 200)
	for i := range payload {
		payload[i] = byte(i)
	}
	return Packet{
		Len:     uint16(len(payload)),
		Payload: payload,
		Count:   4,
		Labels:  []string{"first", "second", "third", "fourth"},
		Weight:  &weight,
		Ok:      true,
		Stamp:   1700000000000,
		Delta:   -3,
		Port:    &port,
	}
}

func BenchmarkPacket(b *testing.B) {
	v := benchPacket()
	cfg := ferry.DefaultConfig()

	var wire []byte
	budget, err := EncodePacket(cfg, ferry.SliceSink(&wire, cfg.BlockSize), &v)
	if err != nil {
		b.Fatal(err)
	}
	var text []byte
	if _, err := EncodePacketText(cfg, ferry.SliceSink(&text, cfg.BlockSize), &v); err != nil {
		b.Fatal(err)
	}
	js, err := json.Marshal(&v)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("binary-encode", func(b *testing.B) {
		block := make([]byte, cfg.BlockSize)
		push := func(int) ([]byte, error) { return block, nil }
		b.ReportAllocs()
		b.SetBytes(int64(len(wire)))
		for i := 0; i < b.N; i++ {
			if _, err := EncodePacket(cfg, push, &v); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("binary-decode", func(b *testing.B) {
		heap := make([]byte, budget)
		var got Packet
		b.ReportAllocs()
		b.SetBytes(int64(len(wire)))
		for i := 0; i < b.N; i++ {
			if err := DecodePacket(cfg, ferry.BytesSource(wire), &got, heap); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("text-encode", func(b *testing.B) {
		block := make([]byte, cfg.BlockSize)
		push := func(int) ([]byte, error) { return block, nil }
		b.ReportAllocs()
		b.SetBytes(int64(len(text)))
		for i := 0; i < b.N; i++ {
			if _, err := EncodePacketText(cfg, push, &v); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("text-decode", func(b *testing.B) {
		heap := make([]byte, budget)
		var got Packet
		b.ReportAllocs()
		b.SetBytes(int64(len(text)))
		for i := 0; i < b.N; i++ {
			if err := DecodePacketText(cfg, ferry.BytesSource(text), &got, heap); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("json-encode", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(js)))
		for i := 0; i < b.N; i++ {
			if _, err := json.Marshal(&v); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("json-decode", func(b *testing.B) {
		var got Packet
		b.ReportAllocs()
		b.SetBytes(int64(len(js)))
		for i := 0; i < b.N; i++ {
			if err := json.Unmarshal(js, &got); err != nil {
				b.Fatal(err)
			}
		}
	})
}
