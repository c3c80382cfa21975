package server

import (
	"bufio"
	"io"
	"strings"

	"github.com/merklekv/merkle-kv/internal/store"
)

const (
	respOK       = "OK"
	respDeleted  = "DELETED"
	respNotFound = "NOT_FOUND"
)

// serveConn runs the command loop for one connection until the peer closes
// it or a read fails. Each request and response is one CRLF-terminated line.
func serveConn(rw io.ReadWriter, st store.Store, pub Publisher) {
	reader := bufio.NewReader(rw)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}

		resp := execute(strings.TrimRight(line, "\r\n"), st, pub)
		if _, err := io.WriteString(rw, resp+"\r\n"); err != nil {
			return
		}
	}
}

// execute parses and runs a single command line against the store,
// returning the response line without its CRLF terminator.
func execute(line string, st store.Store, pub Publisher) string {
	parts := strings.SplitN(line, " ", 3)
	command := strings.ToUpper(parts[0])

	switch command {
	case "GET":
		if len(parts) != 2 || parts[1] == "" {
			return "ERROR usage: GET <key>"
		}
		value, ok := st.Get(parts[1])
		if !ok {
			return respNotFound
		}
		return "VALUE " + value

	case "SET":
		if len(parts) != 3 || parts[1] == "" {
			return "ERROR usage: SET <key> <value>"
		}
		key, value := parts[1], parts[2]
		st.Set(key, value)
		if pub != nil {
			pub.PublishSet(key, value)
		}
		return respOK

	case "DEL", "DELETE":
		if len(parts) != 2 || parts[1] == "" {
			return "ERROR usage: " + command + " <key>"
		}
		if !st.Delete(parts[1]) {
			return respNotFound
		}
		if pub != nil {
			pub.PublishDelete(parts[1])
		}
		return respDeleted

	case "":
		return "ERROR empty command"

	default:
		return "ERROR unknown command " + command
	}
}
