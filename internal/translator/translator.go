// Package translator maps internal error codes to user-facing messages.
// The directory can change independently of the business logic: use cases and
// repositories only ever emit codes.
package translator

var directory = map[string]string{
	"ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":     "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak lengkap",
	"ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	"ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":     "tidak dapat membuat komentar karena properti yang dibutuhkan tidak lengkap",
	"ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat komentar karena tipe data tidak sesuai",
	"ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":        "tidak dapat menambahkan reply comment, request payload tidak lengkap",
	"ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":   "tidak dapat menambahkan reply comment karena tipe data tidak sesuai",
	"DELETE_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":   "tidak dapat menghapus komentar karena properti yang dibutuhkan tidak lengkap",
	"DELETE_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat menghapus komentar karena tipe data tidak sesuai",
	"DELETE_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":        "tidak dapat menghapus balasan karena properti yang dibutuhkan tidak lengkap",
	"DELETE_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":   "tidak dapat menghapus balasan karena tipe data tidak sesuai",
	"THREAD.NOT_FOUND":       "thread tidak ditemukan",
	"COMMENT.NOT_FOUND":      "komentar tidak ditemukan",
	"REPLY.NOT_FOUND":        "balasan tidak ditemukan",
	"COMMENT.NOT_AUTHORIZED": "anda tidak berhak mengakses resource ini",
	"REPLY.NOT_AUTHORIZED":   "anda tidak berhak mengakses resource ini",
}

// InternalServerMessage is what unmapped errors surface as; internal detail
// never leaks to the client.
const InternalServerMessage = "terjadi kegagalan pada server kami"

// Message returns the localized text for a code, or the code itself when no
// translation exists.
func Message(code string) string {
	if msg, ok := directory[code]; ok {
		return msg
	}
	return code
}
