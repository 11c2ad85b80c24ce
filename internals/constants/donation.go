package constants

// Donation categories shown in the mobile wizard.
const (
	DonationTypeZakat        = "zakat"
	DonationTypeSadaqah      = "sadaqah"
	DonationTypeConstruction = "construction"
	DonationTypeEducation    = "education"
)

// Payment channels. These are labels only; no charge is performed.
const (
	PaymentMethodBkash  = "bkash"
	PaymentMethodNagad  = "nagad"
	PaymentMethodRocket = "rocket"
	PaymentMethodCash   = "cash"
)

// Display name used for anonymous (guest) donors on the public ledger.
const AnonymousDonorName = "Anonymous"

// Donor name recorded on a draft when no session is present.
const GuestDonorName = "Guest"

var (
	DonationTypes = []string{
		DonationTypeZakat,
		DonationTypeSadaqah,
		DonationTypeConstruction,
		DonationTypeEducation,
	}

	PaymentMethods = []string{
		PaymentMethodBkash,
		PaymentMethodNagad,
		PaymentMethodRocket,
		PaymentMethodCash,
	}

	MonthNames = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
)

func IsDonationType(s string) bool { return contains(DonationTypes, s) }

func IsPaymentMethod(s string) bool { return contains(PaymentMethods, s) }

func IsMonthName(s string) bool { return contains(MonthNames, s) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
