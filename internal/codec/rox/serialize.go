package roxbin

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/Glubus/Rhythm-Open-Exchange"
)

// Fixed-layout structural serialization of a Chart, little-endian, with
// length-prefixed UTF-8 strings. There is no zero-copy archival library in
// the Go ecosystem analogous to the reference implementation's rkyv (see
// DESIGN.md), so the layout below is hand-rolled the way the teacher repo
// hand-decodes PCM sample frames directly with encoding/binary.

type writer struct {
	buf bytes.Buffer
}

func (w *writer) u8(v uint8) { w.buf.WriteByte(v) }

func (w *writer) bool(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *writer) u16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) u64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) i64(v int64) { w.u64(uint64(v)) }

func (w *writer) f32(v float32) {
	w.u32(math.Float32bits(v))
}

func (w *writer) str(s string) {
	w.u32(uint32(len(s)))
	w.buf.WriteString(s)
}

func (w *writer) optStr(s *string) {
	w.bool(s != nil)
	if s != nil {
		w.str(*s)
	}
}

func (w *writer) optU64(v *uint64) {
	w.bool(v != nil)
	if v != nil {
		w.u64(*v)
	}
}

func (w *writer) optU16(v *uint16) {
	w.bool(v != nil)
	if v != nil {
		w.u16(*v)
	}
}

func (w *writer) optU8(v *uint8) {
	w.bool(v != nil)
	if v != nil {
		w.u8(*v)
	}
}

func (w *writer) optF32(v *float32) {
	w.bool(v != nil)
	if v != nil {
		w.f32(*v)
	}
}

type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader { return &reader{data: data} }

func (r *reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return io.ErrUnexpectedEOF
	}

	return nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}

	v := r.data[r.pos]
	r.pos++

	return v, nil
}

func (r *reader) boolean() (bool, error) {
	v, err := r.u8()

	return v != 0, err
}

func (r *reader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}

	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2

	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}

	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4

	return v, nil
}

func (r *reader) u64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}

	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8

	return v, nil
}

func (r *reader) i64() (int64, error) {
	v, err := r.u64()

	return int64(v), err
}

func (r *reader) f32() (float32, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

func (r *reader) str() (string, error) {
	n, err := r.u32()
	if err != nil {
		return "", err
	}

	if err := r.need(int(n)); err != nil {
		return "", err
	}

	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)

	return s, nil
}

func (r *reader) optStr() (*string, error) {
	present, err := r.boolean()
	if err != nil || !present {
		return nil, err
	}

	s, err := r.str()
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *reader) optU64() (*uint64, error) {
	present, err := r.boolean()
	if err != nil || !present {
		return nil, err
	}

	v, err := r.u64()
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *reader) optU16() (*uint16, error) {
	present, err := r.boolean()
	if err != nil || !present {
		return nil, err
	}

	v, err := r.u16()
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *reader) optU8() (*uint8, error) {
	present, err := r.boolean()
	if err != nil || !present {
		return nil, err
	}

	v, err := r.u8()
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *reader) optF32() (*float32, error) {
	present, err := r.boolean()
	if err != nil || !present {
		return nil, err
	}

	v, err := r.f32()
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func serializeChart(c *rox.Chart, deltaNotes []rox.Note) []byte {
	w := &writer{}

	w.u8(c.Version)

	m := c.Metadata
	w.optU64(m.ChartID)
	w.optU64(m.ChartsetID)
	w.u8(m.KeyCount)
	w.str(m.Title)
	w.str(m.Artist)
	w.str(m.Creator)
	w.str(m.DifficultyName)
	w.optF32(m.DifficultyValue)
	w.str(m.AudioFile)
	w.optStr(m.BackgroundFile)
	w.i64(m.AudioOffsetUS)
	w.i64(m.PreviewTimeUS)
	w.i64(m.PreviewDurationUS)
	w.optStr(m.Source)
	w.optStr(m.Genre)
	w.optStr(m.Language)
	w.u32(uint32(len(m.Tags)))

	for _, t := range m.Tags {
		w.str(t)
	}

	w.bool(m.IsCoop)

	w.u32(uint32(len(c.TimingPoints)))

	for _, tp := range c.TimingPoints {
		w.i64(tp.TimeUS)
		w.f32(tp.BPM)
		w.u8(tp.Signature)
		w.bool(tp.IsInherited)
		w.f32(tp.ScrollSpeed)
	}

	w.u32(uint32(len(deltaNotes)))

	for _, n := range deltaNotes {
		w.i64(n.TimeUS)
		w.u8(uint8(n.Kind))
		w.i64(n.DurationUS)
		w.optU16(n.HitsoundIndex)
		w.u8(n.Column)
	}

	w.u32(uint32(len(c.Hitsounds)))

	for _, h := range c.Hitsounds {
		w.str(h.File)
		w.optU8(h.Volume)
	}

	return w.buf.Bytes()
}

func deserializeChart(data []byte) (*rox.Chart, error) {
	r := newReader(data)

	version, err := r.u8()
	if err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}

	c := &rox.Chart{Version: version}

	chartID, err := r.optU64()
	if err != nil {
		return nil, fmt.Errorf("reading chart_id: %w", err)
	}

	c.ChartID = chartID

	chartsetID, err := r.optU64()
	if err != nil {
		return nil, fmt.Errorf("reading chartset_id: %w", err)
	}

	c.ChartsetID = chartsetID

	keyCount, err := r.u8()
	if err != nil {
		return nil, fmt.Errorf("reading key_count: %w", err)
	}

	c.KeyCount = keyCount

	if c.Title, err = r.str(); err != nil {
		return nil, fmt.Errorf("reading title: %w", err)
	}

	if c.Artist, err = r.str(); err != nil {
		return nil, fmt.Errorf("reading artist: %w", err)
	}

	if c.Creator, err = r.str(); err != nil {
		return nil, fmt.Errorf("reading creator: %w", err)
	}

	if c.DifficultyName, err = r.str(); err != nil {
		return nil, fmt.Errorf("reading difficulty_name: %w", err)
	}

	if c.DifficultyValue, err = r.optF32(); err != nil {
		return nil, fmt.Errorf("reading difficulty_value: %w", err)
	}

	if c.AudioFile, err = r.str(); err != nil {
		return nil, fmt.Errorf("reading audio_file: %w", err)
	}

	if c.BackgroundFile, err = r.optStr(); err != nil {
		return nil, fmt.Errorf("reading background_file: %w", err)
	}

	if c.AudioOffsetUS, err = r.i64(); err != nil {
		return nil, fmt.Errorf("reading audio_offset_us: %w", err)
	}

	if c.PreviewTimeUS, err = r.i64(); err != nil {
		return nil, fmt.Errorf("reading preview_time_us: %w", err)
	}

	if c.PreviewDurationUS, err = r.i64(); err != nil {
		return nil, fmt.Errorf("reading preview_duration_us: %w", err)
	}

	if c.Source, err = r.optStr(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	if c.Genre, err = r.optStr(); err != nil {
		return nil, fmt.Errorf("reading genre: %w", err)
	}

	if c.Language, err = r.optStr(); err != nil {
		return nil, fmt.Errorf("reading language: %w", err)
	}

	tagCount, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("reading tags count: %w", err)
	}

	c.Tags = make([]string, tagCount)

	for i := range c.Tags {
		if c.Tags[i], err = r.str(); err != nil {
			return nil, fmt.Errorf("reading tag %d: %w", i, err)
		}
	}

	if c.IsCoop, err = r.boolean(); err != nil {
		return nil, fmt.Errorf("reading is_coop: %w", err)
	}

	tpCount, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("reading timing_points count: %w", err)
	}

	c.TimingPoints = make([]rox.TimingPoint, tpCount)

	for i := range c.TimingPoints {
		tp := &c.TimingPoints[i]

		if tp.TimeUS, err = r.i64(); err != nil {
			return nil, fmt.Errorf("reading timing point %d time: %w", i, err)
		}

		if tp.BPM, err = r.f32(); err != nil {
			return nil, fmt.Errorf("reading timing point %d bpm: %w", i, err)
		}

		if tp.Signature, err = r.u8(); err != nil {
			return nil, fmt.Errorf("reading timing point %d signature: %w", i, err)
		}

		if tp.IsInherited, err = r.boolean(); err != nil {
			return nil, fmt.Errorf("reading timing point %d is_inherited: %w", i, err)
		}

		if tp.ScrollSpeed, err = r.f32(); err != nil {
			return nil, fmt.Errorf("reading timing point %d scroll_speed: %w", i, err)
		}
	}

	noteCount, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("reading notes count: %w", err)
	}

	c.Notes = make([]rox.Note, noteCount)

	for i := range c.Notes {
		n := &c.Notes[i]

		if n.TimeUS, err = r.i64(); err != nil {
			return nil, fmt.Errorf("reading note %d time: %w", i, err)
		}

		kind, err := r.u8()
		if err != nil {
			return nil, fmt.Errorf("reading note %d kind: %w", i, err)
		}

		n.Kind = rox.NoteKind(kind)

		if n.DurationUS, err = r.i64(); err != nil {
			return nil, fmt.Errorf("reading note %d duration: %w", i, err)
		}

		if n.HitsoundIndex, err = r.optU16(); err != nil {
			return nil, fmt.Errorf("reading note %d hitsound index: %w", i, err)
		}

		if n.Column, err = r.u8(); err != nil {
			return nil, fmt.Errorf("reading note %d column: %w", i, err)
		}
	}

	hsCount, err := r.u32()
	if err != nil {
		return nil, fmt.Errorf("reading hitsounds count: %w", err)
	}

	c.Hitsounds = make([]rox.Hitsound, hsCount)

	for i := range c.Hitsounds {
		h := &c.Hitsounds[i]

		if h.File, err = r.str(); err != nil {
			return nil, fmt.Errorf("reading hitsound %d file: %w", i, err)
		}

		if h.Volume, err = r.optU8(); err != nil {
			return nil, fmt.Errorf("reading hitsound %d volume: %w", i, err)
		}
	}

	return c, nil
}
