package connection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go-zeropool-dictionary/internal/messages"

	"github.com/gorilla/websocket"
)

const outgoingChanSize = 50000

var reconnectDelay = time.Second

// RpcError is the error object of a JSON-RPC response
type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type request struct {
	Id      int           `json:"id"`
	JsonRpc string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type response struct {
	Id     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RpcError       `json:"error"`
}

// WsClient multiplexes JSON-RPC requests over a pool of websockets. Responses
// are routed back to the caller by request id. Requests still unanswered when
// their socket drops are sent again.
type WsClient struct {
	sync.Mutex
	endpoint  string
	wsPool    []*websocket.Conn
	outgoing  chan outgoingMsg
	pending   sync.Map // request id -> chan *response
	lastId    int64
	done      chan struct{}
	closeOnce sync.Once
}

type outgoingMsg struct {
	id  int
	msg []byte
}

// inflight holds the requests written to one socket and not yet answered
type inflight struct {
	sync.Mutex
	msgs map[int][]byte
}

func (f *inflight) add(m outgoingMsg) {
	f.Lock()
	f.msgs[m.id] = m.msg
	f.Unlock()
}

func (f *inflight) remove(id int) {
	f.Lock()
	delete(f.msgs, id)
	f.Unlock()
}

func (f *inflight) drain() []outgoingMsg {
	f.Lock()
	defer f.Unlock()
	out := make([]outgoingMsg, 0, len(f.msgs))
	for id, msg := range f.msgs {
		out = append(out, outgoingMsg{id: id, msg: msg})
	}
	f.msgs = map[int][]byte{}
	return out
}

func InitWSClient(endpoint string, numSockets int) (*WsClient, error) {
	messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, messages.RPC_CONNECTING, numSockets, endpoint).ConsoleLog()

	c := &WsClient{
		endpoint: endpoint,
		outgoing: make(chan outgoingMsg, outgoingChanSize),
		done:     make(chan struct{}),
	}
	for i := 0; i < numSockets; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(endpoint, nil)
		if err != nil {
			c.Close()
			return nil, messages.NewDictionaryMessage(
				messages.LOG_LEVEL_ERROR,
				messages.GetComponent(InitWSClient),
				err,
				messages.RPC_FAILED_TO_CONNECT,
				endpoint,
			)
		}
		c.startSocket(conn)
	}
	return c, nil
}

func (c *WsClient) startSocket(conn *websocket.Conn) {
	c.Lock()
	c.wsPool = append(c.wsPool, conn)
	workerId := len(c.wsPool) - 1
	c.Unlock()
	c.run(conn, workerId)
}

func (c *WsClient) run(conn *websocket.Conn, workerId int) {
	stop := make(chan struct{})
	sent := &inflight{msgs: map[int][]byte{}}
	go c.writeWSMessages(conn, sent, stop)
	go c.readWSMessages(conn, workerId, sent, stop)
}

func (c *WsClient) writeWSMessages(conn *websocket.Conn, sent *inflight, stop chan struct{}) {
	for {
		select {
		case m := <-c.outgoing:
			sent.add(m)
			if err := conn.WriteMessage(websocket.TextMessage, m.msg); err != nil {
				// hand the request to another socket
				sent.remove(m.id)
				go c.enqueue(m)
				return
			}
		case <-stop:
			return
		case <-c.done:
			return
		}
	}
}

func (c *WsClient) enqueue(m outgoingMsg) {
	select {
	case c.outgoing <- m:
	case <-c.done:
	}
}

func (c *WsClient) readWSMessages(conn *websocket.Conn, workerId int, sent *inflight, stop chan struct{}) {
	defer func() {
		close(stop)
		conn.Close()
		c.resend(sent)
		c.reconnect(workerId)
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		resp := &response{}
		if err := json.Unmarshal(raw, resp); err != nil {
			messages.NewDictionaryMessage(
				messages.LOG_LEVEL_WARNING,
				messages.GetComponent(c.readWSMessages),
				err,
				messages.RPC_FAILED_TO_DECODE,
				"websocket",
			).ConsoleLog()
			continue
		}
		sent.remove(resp.Id)
		if callerChan, ok := c.pending.Load(resp.Id); ok {
			select {
			case callerChan.(chan *response) <- resp:
			default:
			}
		}
	}
}

// resend queues again the requests of a dropped socket whose callers still wait
func (c *WsClient) resend(sent *inflight) {
	for _, m := range sent.drain() {
		if _, ok := c.pending.Load(m.id); ok {
			go c.enqueue(m)
		}
	}
}

// reconnect replaces the socket at workerId until it succeeds or the client
// is closed
func (c *WsClient) reconnect(workerId int) {
	for {
		select {
		case <-c.done:
			return
		default:
		}

		messages.NewDictionaryMessage(messages.LOG_LEVEL_WARNING, "", nil, messages.RPC_RECONNECTING, workerId).ConsoleLog()
		conn, _, err := websocket.DefaultDialer.Dial(c.endpoint, nil)
		if err == nil {
			c.Lock()
			select {
			case <-c.done:
				c.Unlock()
				conn.Close()
				return
			default:
			}
			c.wsPool[workerId] = conn
			c.Unlock()
			c.run(conn, workerId)
			return
		}

		select {
		case <-time.After(reconnectDelay):
		case <-c.done:
			return
		}
	}
}

// Call sends a JSON-RPC request and waits for its result
func (c *WsClient) Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}
	return c.send(ctx, method, func(id int) []byte {
		msg, _ := json.Marshal(request{Id: id, JsonRpc: "2.0", Method: method, Params: params})
		return msg
	})
}

// send registers a fresh request id, writes the message build returns for it
// and waits for the matching response
func (c *WsClient) send(ctx context.Context, method string, build func(id int) []byte) (json.RawMessage, error) {
	id := int(atomic.AddInt64(&c.lastId, 1))
	responseChan := make(chan *response, 1)
	c.pending.Store(id, responseChan)
	defer c.pending.Delete(id)

	select {
	case c.outgoing <- outgoingMsg{id: id, msg: build(id)}:
	case <-ctx.Done():
		return nil, c.requestFailed(method, ctx.Err())
	case <-c.done:
		return nil, messages.NewDictionaryMessage(messages.LOG_LEVEL_ERROR, messages.GetComponent(c.send), nil, messages.RPC_CLIENT_CLOSED)
	}

	select {
	case resp := <-responseChan:
		if resp.Error != nil {
			return nil, c.requestFailed(method, resp.Error)
		}
		return resp.Result, nil
	case <-ctx.Done():
		return nil, c.requestFailed(method, ctx.Err())
	case <-c.done:
		return nil, messages.NewDictionaryMessage(messages.LOG_LEVEL_ERROR, messages.GetComponent(c.send), nil, messages.RPC_CLIENT_CLOSED)
	}
}

func (c *WsClient) requestFailed(method string, err error) error {
	return messages.NewDictionaryMessage(
		messages.LOG_LEVEL_ERROR,
		messages.GetComponent(c.send),
		err,
		messages.RPC_REQUEST_FAILED,
		method,
	)
}

func (c *WsClient) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.Lock()
		defer c.Unlock()
		for _, conn := range c.wsPool {
			conn.Close()
		}
	})
}
