package showroom

import "errors"

var (
	ErrInvalidPublicURL = errors.New("showroom: invalid public url")
	ErrProductNotFound  = errors.New("showroom: product not found")
	ErrInvalidAsset     = errors.New("showroom: invalid asset reference")
	ErrInvalidQRStyle   = errors.New("showroom: invalid qr code style")
)
