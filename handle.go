package notelines

// Handle is a stable, typed reference to a record stored in an Arena.
// The type parameter ties a handle to the record kind it addresses, so a
// handle to a note and a handle to a skip list node can never be mixed up
// or compared at compile time.
//
// The zero value means "no record". Arenas never issue slot 0, so an
// optional handle needs no extra storage: absence and presence share the
// same 4 bytes.
//
// Handle คือตัวอ้างอิงแบบระบุชนิดไปยังรายการที่เก็บอยู่ใน Arena
// ค่า zero value หมายถึง "ไม่มีรายการ" เพราะ Arena จะไม่แจกช่องหมายเลข 0
// ทำให้ handle แบบ optional ไม่ต้องใช้หน่วยความจำเพิ่ม
type Handle[T any] uint32

// IsNil reports whether the handle refers to no record.
// IsNil คืนค่า true หาก handle ไม่ได้อ้างอิงถึงรายการใดๆ
func (h Handle[T]) IsNil() bool {
	return h == 0
}
