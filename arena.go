package notelines

import "fmt"

// Arena is a slab-style store that hands out a stable Handle for every
// inserted record. Handles stay valid until the record is explicitly
// removed, independent of any other insert or remove on the same arena.
// Freed slots are kept on a free list and reused by later inserts; slot 0
// is reserved so the zero Handle can mean "no record".
//
// Arena คือที่เก็บข้อมูลแบบ slab ที่แจก Handle ที่เสถียรให้กับทุกรายการ
// Handle จะใช้งานได้จนกว่ารายการนั้นจะถูกลบออกอย่างชัดเจน โดยไม่ขึ้นกับ
// การเพิ่มหรือลบรายการอื่นใน Arena เดียวกัน
// ช่องหมายเลข 0 ถูกสงวนไว้เพื่อให้ Handle ที่เป็น zero value หมายถึง "ไม่มีรายการ"
type Arena[T any] struct {
	slots []arenaSlot[T]
	free  []uint32 // ช่องที่ถูกลบแล้วและพร้อมนำกลับมาใช้ใหม่
	count int
}

type arenaSlot[T any] struct {
	value T
	used  bool
}

// NewArena creates an arena with room for capacity records before the
// backing storage has to grow.
// NewArena สร้าง Arena ใหม่ที่รองรับรายการได้ตามจำนวน capacity
// ก่อนที่หน่วยความจำภายในจะต้องขยายตัว
func NewArena[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	// Slot 0 is a permanently unused placeholder.
	slots := make([]arenaSlot[T], 1, capacity+1)
	return &Arena[T]{slots: slots}
}

// Insert stores a record and returns its handle.
//
// Growing the backing storage may move existing records, so pointers
// previously returned by Get must not be held across a call to Insert.
// Handles are unaffected.
//
// Insert เก็บรายการและคืนค่า handle ของรายการนั้น
// pointer ที่ได้จาก Get ก่อนหน้านี้ห้ามถือข้ามการเรียก Insert
// เพราะหน่วยความจำภายในอาจถูกย้ายเมื่อขยายตัว ส่วน handle ไม่ได้รับผลกระทบ
func (a *Arena[T]) Insert(value T) Handle[T] {
	a.count++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = arenaSlot[T]{value: value, used: true}
		return Handle[T](idx)
	}
	a.slots = append(a.slots, arenaSlot[T]{value: value, used: true})
	return Handle[T](len(a.slots) - 1)
}

// Get dereferences a handle. Passing a handle whose slot is unused or out
// of range is a programming error and panics rather than returning a
// default.
// Get แปลง handle กลับเป็น pointer ไปยังรายการ
// การส่ง handle ที่ช่องว่างหรืออยู่นอกขอบเขตถือเป็นบั๊กของผู้เรียกและจะ panic
func (a *Arena[T]) Get(h Handle[T]) *T {
	if h == 0 || int(h) >= len(a.slots) || !a.slots[h].used {
		panic(fmt.Sprintf("notelines: invalid arena handle %d", uint32(h)))
	}
	return &a.slots[h].value
}

// Remove frees the slot behind the handle for reuse and returns the record
// that was stored there. The handle must be valid.
// Remove คืนช่องของ handle ให้นำกลับมาใช้ใหม่ และคืนค่ารายการที่เคยเก็บอยู่
func (a *Arena[T]) Remove(h Handle[T]) T {
	value := *a.Get(h)
	a.slots[h] = arenaSlot[T]{}
	a.free = append(a.free, uint32(h))
	a.count--
	return value
}

// Len returns the number of live records in the arena.
// Len คืนค่าจำนวนรายการที่ยังอยู่ใน Arena
func (a *Arena[T]) Len() int {
	return a.count
}

// Reset drops every record at once. All outstanding handles become invalid.
// Reset ลบทุกรายการในคราวเดียว handle ที่ยังค้างอยู่ทั้งหมดจะใช้ไม่ได้อีกต่อไป
func (a *Arena[T]) Reset() {
	a.slots = a.slots[:1]
	a.free = a.free[:0]
	a.count = 0
}
