package engine

import "strings"

// scanDocument simulates the OCR engine for local document URIs. The corpus
// mirrors the document classes the presentation layer exercises; the
// returned confidence is the OCR engine's own, not an extraction estimate.
func scanDocument(uri string) (string, float64) {
	lower := strings.ToLower(uri)
	switch {
	case strings.Contains(lower, "po"):
		return poSample, 0.94
	case strings.Contains(lower, "rfq"):
		return rfqSample, 0.91
	default:
		return popSample, 0.96
	}
}

const poSample = `PURCHASE ORDER
ABC Manufacturing (Pty) Ltd
Registration: 2019/123456/07
VAT: 4123456789

Email: orders@abcmanufacturing.co.za
Phone: +27 11 123 4567
Address: 123 Industrial Ave, Johannesburg, 2001

PO Number: PO-2024-001234
Date: 2024-01-15

Banking Details:
Account: 1234567890
Branch: 632005
Bank: First National Bank

Total Amount: R 25,750.00

Supplier: XYZ Supplies
Delivery Date: 2024-01-30`

const rfqSample = `REQUEST FOR QUOTATION
TechCorp Solutions
Reg No: 2020/987654/07

Contact: procurement@techcorp.co.za
Tel: 021 555 0123

RFQ: RFQ-2024-0567
Date: 2024-01-20

Required: IT Equipment
Quantity: 50 units
Budget: R 150,000

Closing Date: 2024-02-05`

const popSample = `PROOF OF PAYMENT

From: Standard Bank
Reference: SB240115001234
Date: 2024-01-15

From Account: ****7890
To Account: 1234567890
Branch: 051001

Amount: R 12,500.00
Description: Payment for Invoice INV-2024-001

Transaction Successful
Balance: R 45,230.15`
