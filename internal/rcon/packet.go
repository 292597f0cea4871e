package rcon

import (
	"encoding/binary"
	"fmt"
	"io"
)

// типы пакетов Source RCON; AUTH_RESPONSE и EXECCOMMAND делят код 2 —
// это особенность протокола, а не опечатка
const (
	packetResponseValue int32 = 0
	packetExecCommand   int32 = 2
	packetAuthResponse  int32 = 2
	packetAuth          int32 = 3
)

// размер тела у ванильного сервера ограничен 4096
const maxPacketSize = 4096 + 10

// writePacket пишет один пакет: size | id | type | body | 0x00 0x00,
// всё little-endian.
func writePacket(w io.Writer, id, ptype int32, body string) error {
	size := int32(4 + 4 + len(body) + 2)
	buf := make([]byte, 0, 4+size)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(size))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(id))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(ptype))
	buf = append(buf, body...)
	buf = append(buf, 0, 0)
	_, err := w.Write(buf)
	return err
}

func readPacket(r io.Reader) (id, ptype int32, body string, err error) {
	var szBuf [4]byte
	if _, err = io.ReadFull(r, szBuf[:]); err != nil {
		return
	}
	size := int32(binary.LittleEndian.Uint32(szBuf[:]))
	if size < 10 || size > maxPacketSize {
		err = fmt.Errorf("bad packet size %d", size)
		return
	}
	payload := make([]byte, size)
	if _, err = io.ReadFull(r, payload); err != nil {
		return
	}
	id = int32(binary.LittleEndian.Uint32(payload[0:4]))
	ptype = int32(binary.LittleEndian.Uint32(payload[4:8]))
	body = string(payload[8 : size-2])
	return
}
