package iso8583

// TietoNative is the Tieto Card Suite native interface: an MTI, the primary
// bitmap, a secondary bitmap in de1 and data elements de2 to de128.
var TietoNative = NewSchemaBuilder("tieto-native").
	Primary("mti", MTI(), "Message Type Identifier").
	Primary("b1", Bitmap(), "Primary bitmap").
	Conditional("de1", Bitmap(), "Secondary bitmap").
	Conditional("de2", LLVAR(19), "Primary account number (PAN)").
	Conditional("de3", FixedString(6), "Processing code").
	Conditional("de4", FixedNumber(12), "Amount, transaction").
	Conditional("de5", FixedNumber(12), "Amount, settlement").
	Conditional("de6", FixedNumber(12), "Amount, cardholder billing").
	Conditional("de7", FixedString(14), "Date and time, transaction").
	Conditional("de8", FixedString(8), "Amount, cardholder billing fee").
	Conditional("de9", FixedNumber(8), "Conversion rate, reconciliation").
	Conditional("de10", FixedNumber(8), "Conversion rate, cardholder billing").
	Conditional("de11", FixedString(6), "System trace audit number (STAN)").
	Conditional("de12", FixedString(14), "Date and time, local transaction").
	Conditional("de13", FixedString(4), "Date, effective").
	Conditional("de14", FixedString(4), "Date, expiration").
	Conditional("de15", FixedString(14), "Date, settlement").
	Conditional("de16", FixedString(4), "Date, conversion").
	Conditional("de17", FixedString(4), "Date, capture").
	Conditional("de18", FixedString(4), "Merchant type").
	Conditional("de19", FixedString(3), "Country code, acquiring institution").
	Conditional("de20", FixedString(3), "Country code, PAN").
	Conditional("de21", FixedString(3), "Country code, forwarding institution").
	Conditional("de22", FixedString(12), "POS data code (point code)").
	Conditional("de23", FixedString(3), "Card sequence number").
	Conditional("de24", FixedString(3), "Function code").
	Conditional("de25", FixedString(4), "Message reason code").
	Conditional("de26", FixedString(4), "Card acceptor business code").
	Conditional("de27", FixedString(1), "Approval code length").
	Conditional("de28", FixedString(14), "Date, reconciliation").
	Conditional("de29", FixedString(3), "Reconciliation, indicator").
	Conditional("de30", FixedString(24), "Amounts, original").
	Conditional("de31", LLVAR(0), "ATM audit ID").
	Conditional("de32", LLVAR(0), "Acquirer ID").
	Conditional("de33", LLVAR(0), "Forwarder ID").
	Conditional("de34", LLVAR(0), "PAN, extended").
	Conditional("de35", LLVAR(0), "Track 2 data").
	Conditional("de36", LLLVAR(0), "Track 3 data").
	Conditional("de37", FixedString(12), "Retrieval reference number").
	Conditional("de38", FixedString(6), "Approval code").
	Conditional("de39", FixedString(3), "Action code").
	Conditional("de40", FixedString(3), "Service code").
	Conditional("de41", FixedString(8), "Card acceptor terminal identification").
	Conditional("de42", FixedString(15), "Card acceptor identification").
	Conditional("de43", LLVAR(0), "Card acceptor name/location").
	Conditional("de44", LLVAR(0), "Additional response data").
	Conditional("de45", LLVAR(0), "Track 1 data").
	Conditional("de46", LLLVAR(0), "Amounts, fees").
	Conditional("de47", LLLVAR(0), "Additional data, national").
	Conditional("de48", LLLVAR(0), "Additional data, private").
	Conditional("de49", FixedString(3), "Currency code, transaction").
	Conditional("de50", FixedString(3), "Currency code, reconciliation").
	Conditional("de51", FixedString(3), "Currency code, cardholder billing").
	Conditional("de52", FixedString(16), "PIN data").
	Conditional("de53", LLVAR(0), "Security related control information").
	Conditional("de54", LLLVAR(0), "Amounts, additional").
	Conditional("de55", LLLVAR(0), "Integrated circuit card system related data").
	Conditional("de56", LLVAR(0), "Original data elements").
	Conditional("de57", FixedString(3), "Authorization life cycle code").
	Conditional("de58", LLVAR(0), "Authorizing agent ID").
	Conditional("de59", LLLVAR(0), "Transport data").
	Conditional("de60", LLLVAR(0), "Reserved for national use").
	Conditional("de61", LLLVAR(0), "Reserved for national use").
	Conditional("de62", LLLVAR(0), "Reserved for private use").
	Conditional("de63", LLLVAR(0), "Reserved for private use").
	Conditional("de64", FixedString(16), "Message authentication code (MAC)").
	Conditional("de65", FixedString(16), "Reserved for ISO code").
	Conditional("de66", LLLVAR(0), "Amounts, original fees").
	Conditional("de67", FixedString(2), "Extended payment data").
	Conditional("de68", FixedString(3), "Country code, receiving institution").
	Conditional("de69", FixedString(3), "Country code, settlement institution").
	Conditional("de70", FixedString(3), "Country code, authorizing agent").
	Conditional("de71", FixedString(8), "Message number").
	Conditional("de72", LLLVAR(0), "Data record").
	Conditional("de73", FixedString(6), "Date, action").
	Conditional("de74", FixedNumber(10), "Credits, number").
	Conditional("de75", FixedNumber(10), "Credits, reversal number").
	Conditional("de76", FixedNumber(10), "Debits, number").
	Conditional("de77", FixedNumber(10), "Debits, reversal number").
	Conditional("de78", FixedNumber(10), "Transfer, number").
	Conditional("de79", FixedNumber(10), "Transfer, reversal number").
	Conditional("de80", FixedNumber(10), "Inquiries, number").
	Conditional("de81", FixedNumber(10), "Authorizations, number").
	Conditional("de82", FixedNumber(10), "Inquiries, reversal number").
	Conditional("de83", FixedNumber(10), "Payments, number").
	Conditional("de84", FixedNumber(10), "Payments, reversal number").
	Conditional("de85", FixedNumber(10), "Fee collections, number").
	Conditional("de86", FixedNumber(16), "Credits, amount").
	Conditional("de87", FixedNumber(16), "Credits, reversal amount").
	Conditional("de88", FixedNumber(16), "Debits, amount").
	Conditional("de89", FixedNumber(16), "Debits, reversal amount").
	Conditional("de90", FixedNumber(10), "Authorizations, reversal number").
	Conditional("de91", FixedString(3), "Country code, transaction destination institution").
	Conditional("de92", FixedString(3), "Country code, transaction originator institution").
	Conditional("de93", LLVAR(0), "Transaction destination institution ID").
	Conditional("de94", LLVAR(0), "Transaction originator institution ID").
	Conditional("de95", LLVAR(0), "Card issuer reference data").
	Conditional("de96", LLLVAR(0), "Key management data").
	Conditional("de97", FixedString(17), "Amount, net reconciliation").
	Conditional("de98", FixedString(25), "Payee").
	Conditional("de99", LLVAR(0), "Settlement institution ID").
	Conditional("de100", LLVAR(0), "Receiving institution ID").
	Conditional("de101", LLVAR(0), "File name").
	Conditional("de102", LLVAR(0), "Account identification 1").
	Conditional("de103", LLVAR(0), "Account identification 2").
	Conditional("de104", LLLVAR(0), "Transaction description").
	Conditional("de105", FixedString(16), "Credits, chargeback amount").
	Conditional("de106", FixedString(16), "Debits, chargeback amount").
	Conditional("de107", FixedString(10), "Credits, chargeback number").
	Conditional("de108", FixedString(10), "Debits, chargeback number").
	Conditional("de109", LLVAR(0), "Credits, fee amounts").
	Conditional("de110", LLVAR(0), "Debits, fee amounts").
	Conditional("de111", LLLVAR(0), "Reserved for ISO use").
	Conditional("de112", LLLVAR(0), "Reserved for ISO use").
	Conditional("de113", LLLVAR(0), "Reserved for ISO use").
	Conditional("de114", LLLVAR(0), "Reserved for ISO use").
	Conditional("de115", LLLVAR(0), "Reserved for ISO use").
	Conditional("de116", LLVAR(0), "Reserved for national use").
	Conditional("de117", LLVAR(0), "Reserved for national use").
	Conditional("de118", LLVAR(0), "Reserved for national use").
	Conditional("de119", LLVAR(0), "Reserved for national use").
	Conditional("de120", LLVAR(0), "Reserved for national use").
	Conditional("de121", LLLVAR(0), "Reserved for national use").
	Conditional("de122", LLLVAR(0), "Acquirer additional data transport field (limited usage)").
	Conditional("de123", LLLVAR(0), "Prevalidation results").
	Conditional("de124", LLLVAR(0), "Reserved for private use").
	Conditional("de125", LLLVAR(0), "Reserved for private use").
	Conditional("de126", LLLLVAR(0), "Acquirer request additional data").
	Conditional("de127", LLLVAR(0), "Reserved for private use").
	Conditional("de128", FixedString(16), "Message authentication code (MAC)").
	MustBuild()
