package handler_test

import (
	"net/http"
	"net/http/httptest"
	"soko/internal/http/handler"
	"soko/internal/http/handler/fake"
	"soko/internal/session"
	"soko/internal/wallet"
	"strings"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HandleEvents", func() {
	var (
		srv         *httptest.Server
		fakeSession *fake.WalletSession
		events      chan session.Event
		conn        *websocket.Conn
	)

	BeforeEach(func() {
		fakeSession = new(fake.WalletSession)
		events = make(chan session.Event, 4)
		events <- session.Event{State: wallet.Disconnected}
		fakeSession.SubscribeReturns(events)

		h := handler.NewWalletHandler(zap.NewNop().Sugar(), new(fake.RequestValidator), fakeSession)
		mux := http.NewServeMux()
		mux.HandleFunc(handler.Events, h.HandleEvents)
		srv = httptest.NewServer(mux)

		var err error
		conn, _, err = websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/soko/events", nil)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		conn.Close()
		srv.Close()
	})

	It("should stream session events as json", func() {
		var ev session.Event
		Expect(conn.ReadJSON(&ev)).To(Succeed())
		Expect(ev.State).To(Equal(wallet.Disconnected))

		events <- session.Event{State: wallet.Connected, Account: "0xA1", Token: "jwt"}
		Expect(conn.ReadJSON(&ev)).To(Succeed())
		Expect(ev.State).To(Equal(wallet.Connected))
		Expect(ev.Token).To(Equal("jwt"))

		events <- session.Event{State: wallet.Connected, RefreshToken: 7}
		Expect(conn.ReadJSON(&ev)).To(Succeed())
		Expect(ev.RefreshToken).To(Equal(uint64(7)))
	})

	It("should close the stream when a newer subscriber replaces it", func() {
		var ev session.Event
		Expect(conn.ReadJSON(&ev)).To(Succeed())

		close(events)

		_, _, err := conn.ReadMessage()
		Expect(websocket.IsCloseError(err, websocket.CloseNormalClosure)).To(BeTrue())
		Eventually(fakeSession.UnsubscribeCallCount).Should(Equal(1))
	})

	It("should unsubscribe when the client goes away", func() {
		var ev session.Event
		Expect(conn.ReadJSON(&ev)).To(Succeed())

		conn.Close()

		Eventually(fakeSession.UnsubscribeCallCount).Should(Equal(1))
		Expect(fakeSession.UnsubscribeArgsForCall(0)).To(Equal((<-chan session.Event)(events)))
	})
})
