package server

import (
	"net"

	"github.com/google/uuid"
	"github.com/valyala/bytebufferpool"

	"github.com/sizzlecar/simple-redis/internal/command"
	"github.com/sizzlecar/simple-redis/internal/logging"
	"github.com/sizzlecar/simple-redis/internal/resp"
)

const readChunkSize = 4096

// conn owns one client's lifetime: reading frames off the wire,
// dispatching them, and writing the reply back. It is never shared
// across goroutines.
type conn struct {
	id      string
	nc      net.Conn
	handler *command.Handler
	log     logging.Logger
	dec     *resp.Decoder

	buf []byte // unconsumed bytes read from nc, appended at the back and consumed from the front
}

func newConn(nc net.Conn, handler *command.Handler, log logging.Logger) *conn {
	id := uuid.NewString()
	return &conn{
		id:      id,
		nc:      nc,
		handler: handler,
		log:     log.With("conn", id, "remote", nc.RemoteAddr().String()),
		dec:     resp.NewDecoder(),
	}
}

// serve reads and answers requests until the connection closes or a
// malformed frame forces it shut. It never lets a handler panic escape
// to the listener goroutine.
func (c *conn) serve() {
	defer c.nc.Close()
	c.log.Infof("accepted connection")

	chunk := make([]byte, readChunkSize)
	for {
		args, err := c.readRequest(chunk)
		if err != nil {
			if err != errConnClosed {
				c.log.Debugf("closing connection: %v", err)
			}
			return
		}

		reply := c.dispatchSafely(args)
		if err := c.writeReply(reply); err != nil {
			c.log.Debugf("write failed: %v", err)
			return
		}
	}
}

var errConnClosed = errConnClosedSentinel{}

type errConnClosedSentinel struct{}

func (errConnClosedSentinel) Error() string { return "connection closed" }

// readRequest decodes the next command frame, pulling more bytes off
// the wire as needed, and parses it into its positional arguments. A
// frame that decodes fine but does not have the shape of a command
// (not an array, a non-bulk element, zero elements) is not fatal: it
// gets an inline error reply and readRequest keeps reading, exactly as
// if the client had sent a recognized-but-invalid command. Only a
// framing-level *resp.MalformedError, a write failure, or the
// connection closing end the connection.
func (c *conn) readRequest(chunk []byte) ([][]byte, error) {
	for {
		if len(c.buf) > 0 {
			f, n, err := c.dec.Decode(c.buf)
			switch err {
			case nil:
				c.buf = c.buf[n:]
				args, perr := command.ParseRequest(f)
				if perr != nil {
					if err := c.writeReply(resp.Errorf("ERR invalid command")); err != nil {
						return nil, err
					}
					continue
				}
				return args, nil
			case resp.ErrIncomplete:
				// fall through to read more
			default:
				return nil, err
			}
		}

		n, err := c.nc.Read(chunk)
		if n > 0 {
			c.buf = append(c.buf, chunk[:n]...)
		}
		if err != nil {
			if n == 0 {
				return nil, errConnClosed
			}
			return nil, err
		}
	}
}

func (c *conn) dispatchSafely(args [][]byte) (reply resp.Frame) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Errorf("recovered from panic handling command: %v", r)
			reply = resp.Errorf("ERR internal error")
		}
	}()
	return c.handler.Dispatch(args)
}

func (c *conn) writeReply(f resp.Frame) error {
	bb := resp.EncodeBuffer(f)
	defer bytebufferpool.Put(bb)
	_, err := c.nc.Write(bb.B)
	return err
}
