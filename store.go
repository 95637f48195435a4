package notelines

import "math/rand/v2"

const (
	// Levels is the fixed number of link tiers in every skip list node.
	// Level 0 is the full sorted chain; each level above it is a shortcut
	// tier that a node joins with half the probability of the tier below.
	// Levels คือจำนวนชั้นของลิงก์ในโหนด skip list ทุกตัว
	// ชั้น 0 คือสายโซ่เรียงลำดับเต็ม ส่วนชั้นที่สูงกว่าเป็นทางลัด
	// ที่โหนดมีโอกาสเข้าร่วมเพียงครึ่งหนึ่งของชั้นที่อยู่ต่ำกว่า
	Levels = 5
)

// store owns the process-wide pieces every line shares: the note arena, the
// node arena, and the random source used for level generation. A store is
// created by NewNoteLines and lives as long as its NoteLines.
//
// store เก็บส่วนที่ทุกไลน์ใช้ร่วมกัน ได้แก่ arena ของโน้ต, arena ของโหนด
// และตัวสร้างเลขสุ่มสำหรับกำหนดชั้นของโหนดใหม่
type store struct {
	notes *Arena[NoteBox]
	nodes *Arena[noteNode]
	rand  *rand.Rand
}

type config struct {
	seed    uint64
	seeded  bool
	noteCap int
	nodeCap int
}

// Option configures a NoteLines at construction time.
// Option คือฟังก์ชันสำหรับกำหนดค่าของ NoteLines ตอนสร้าง
type Option func(*config)

// WithSeed seeds the level generator so that node heights, and therefore
// the whole link structure, are reproducible. Without it a random seed is
// used.
// WithSeed กำหนด seed ให้ตัวสร้างเลขสุ่ม ทำให้ความสูงของโหนด
// และโครงสร้างลิงก์ทั้งหมดทำซ้ำได้ เหมาะสำหรับการทดสอบ
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithNoteCapacity pre-sizes the note arena for the given number of notes.
// WithNoteCapacity จองขนาด arena ของโน้ตไว้ล่วงหน้าตามจำนวนที่ระบุ
func WithNoteCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.noteCap = n
		}
	}
}

// WithNodeCapacity pre-sizes the node arena for the given number of nodes.
// WithNodeCapacity จองขนาด arena ของโหนดไว้ล่วงหน้าตามจำนวนที่ระบุ
func WithNodeCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.nodeCap = n
		}
	}
}

func newStore(opts ...Option) *store {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	// PCG เป็น source มาตรฐานของ Go 1.22+ ให้ทั้งความเร็วและการทำซ้ำได้
	var source *rand.PCG
	if c.seeded {
		source = rand.NewPCG(c.seed, c.seed)
	} else {
		source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &store{
		notes: NewArena[NoteBox](c.noteCap),
		nodes: NewArena[noteNode](c.nodeCap),
		rand:  rand.New(source),
	}
}

// nextLevel draws the level of a new node from a geometric distribution:
// P(level = k) = 2^-(k+1) for k below the cap, with the remaining mass on
// the top level. Instead of flipping one coin per iteration it draws a
// single 64-bit word and consumes one bit per flip, which keeps the
// distribution identical while avoiding repeated generator calls.
//
// nextLevel สุ่มชั้นของโหนดใหม่ตามการแจกแจงเรขาคณิต
// โดยดึงเลขสุ่ม 64 บิตครั้งเดียวแล้วใช้ทีละบิตแทนการโยนเหรียญทีละครั้ง
// ซึ่งให้การแจกแจงแบบเดียวกันแต่เร็วกว่า
func (st *store) nextLevel() int {
	x := st.rand.Uint64()
	level := 0
	for x&1 == 0 && level < Levels-1 {
		level++
		x >>= 1
	}
	return level
}
