package jwt_test

import (
	"time"

	tokenIssuer "soko/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("secret"))
		info = tokenIssuer.TokenInfo{
			Subject:    "0x00000000000000000000000000000000000000bb",
			Topic:      "5f0c7c64-7f2f-4b43-9d57-2b1c7e2c1f11",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("should round trip the pairing claims", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal(info.Subject))
		Expect(claims["topic"]).To(Equal(info.Topic))
	})

	It("should sign with HS512", func() {
		token := service.Generate(info)
		Expect(token.Method).To(Equal(jwt.SigningMethodHS512))
	})

	When("the token was signed with another secret", func() {
		It("should reject it", func() {
			other := tokenIssuer.NewJWTService([]byte("other"))
			signed, err := other.Sign(other.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token is garbage", func() {
		It("should reject it", func() {
			_, err := service.Validate("not-a-token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the clock has passed the expiration", func() {
		It("should return ErrTokenExpired", func() {
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			tokenIssuer.TimeNow = func() time.Time {
				return time.Now().Add(48 * time.Hour)
			}

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})
	})
})
