package jwt_test

import (
	"time"

	tokenIssuer "taskpad/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "42",
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Validate", func() {
		It("should round-trip the claims", func() {
			token := service.Generate(info)
			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("42"))
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["jti"]).NotTo(BeEmpty())
		})

		It("should issue a distinct token id every time", func() {
			first := service.Generate(info)
			second := service.Generate(info)

			firstSigned, err := service.Sign(first)
			Expect(err).NotTo(HaveOccurred())
			secondSigned, err := service.Sign(second)
			Expect(err).NotTo(HaveOccurred())

			firstClaims, err := service.Validate(firstSigned)
			Expect(err).NotTo(HaveOccurred())
			secondClaims, err := service.Validate(secondSigned)
			Expect(err).NotTo(HaveOccurred())

			Expect(firstClaims["jti"]).NotTo(Equal(secondClaims["jti"]))
		})
	})

	Describe("Validate", func() {
		When("the token is garbage", func() {
			It("should return token not valid error", func() {
				_, err := service.Validate("not-a-token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token was signed with another secret", func() {
			It("should return token not valid error", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token expiry lies in the past", func() {
			It("should return token not valid error", func() {
				info.Expiration = -time.Hour
				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the service clock has moved past the expiry", func() {
			It("should return token expired error", func() {
				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				tokenIssuer.TimeNow = func() time.Time {
					return time.Now().Add(2 * time.Hour)
				}

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})
	})
})
