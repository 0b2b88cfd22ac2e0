package catalog

import "promptpilot/internal/domain"

// builtinDocumentTypes is the compiled-in document type registry. The order
// is presentation order in the frontend picker.
var builtinDocumentTypes = []domain.DocumentType{
	{
		ID:    "invoice",
		Label: "Invoice (Generic)",
		Icon:  domain.IconReceipt,
		Goals: []domain.Goal{{
			ID:    "extract_invoice_data",
			Label: "Extract Key Invoice Data",
			SuggestedFields: []domain.Field{
				{ID: "invoice_number", Label: "Invoice Number"},
				{ID: "vendor_name", Label: "Vendor Name"},
				{ID: "buyer_name_company_name", Label: "Buyer Name / Company Name"},
				{ID: "invoice_date", Label: "Invoice Date (YYYY-MM-DD)"},
				{ID: "due_date", Label: "Due Date"},
				{ID: "item_descriptions", Label: "Item Description(s)"},
				{ID: "quantity", Label: "Quantity"},
				{ID: "rate", Label: "Rate"},
				{ID: "tax", Label: "Tax"},
				{ID: "total_amount", Label: "Total Amount"},
				{ID: "gstin_vendor_buyer", Label: "GSTIN (Vendor & Buyer)"},
				{ID: "currency", Label: "Currency"},
				{ID: "payment_terms", Label: "Payment Terms"},
				{ID: "po_number_if_applicable", Label: "PO Number (if applicable)"},
			},
		}},
	},
	{
		ID:    "tax_invoice",
		Label: "Tax Invoice (e.g., GST Invoice)",
		Icon:  domain.IconBookCopy,
		Goals: []domain.Goal{{
			ID:    "extract_tax_invoice_data",
			Label: "Extract Key Tax Invoice Data",
			SuggestedFields: []domain.Field{
				{ID: "tax_invoice_number", Label: "Invoice Number"},
				{ID: "tax_invoice_date", Label: "Invoice Date (YYYY-MM-DD)"},
				{ID: "seller_name", Label: "Seller/Supplier Name"},
				{ID: "seller_address", Label: "Seller/Supplier Address"},
				{ID: "seller_gstin", Label: "Seller/Supplier GSTIN/VAT ID"},
				{ID: "buyer_name", Label: "Buyer/Recipient Name"},
				{ID: "buyer_address", Label: "Buyer/Recipient Address"},
				{ID: "buyer_gstin", Label: "Buyer/Recipient GSTIN/VAT ID"},
				{ID: "hsn_sac_codes", Label: "HSN/SAC Code(s)"},
				{ID: "item_service_descriptions", Label: "Item/Service Description(s)"},
				{ID: "item_quantity", Label: "Quantity"},
				{ID: "item_unit_price", Label: "Unit Price/Rate"},
				{ID: "item_taxable_value", Label: "Taxable Value (per item/total)"},
				{ID: "cgst_rate_amount", Label: "CGST Rate & Amount"},
				{ID: "sgst_utgst_rate_amount", Label: "SGST/UTGST Rate & Amount"},
				{ID: "igst_rate_amount", Label: "IGST Rate & Amount"},
				{ID: "total_tax_amount", Label: "Total Tax Amount"},
				{ID: "invoice_total_value", Label: "Total Invoice Value (incl. tax)"},
				{ID: "place_of_supply", Label: "Place of Supply"},
				{ID: "reverse_charge", Label: "Reverse Charge (Yes/No)"},
				{ID: "eway_bill_number", Label: "E-way Bill Number (if applicable)"},
				{ID: "tax_payment_terms", Label: "Payment Terms"},
				{ID: "seller_bank_details", Label: "Seller Bank Details for Payment"},
			},
		}},
	},
	{
		ID:    "bank_statement",
		Label: "Bank Statement",
		Icon:  domain.IconLandmark,
		Goals: []domain.Goal{{
			ID:    "extract_bank_statement_data",
			Label: "Extract Key Bank Statement Data",
			SuggestedFields: []domain.Field{
				{ID: "account_holder_name", Label: "Account Holder Name"},
				{ID: "bank_name", Label: "Bank Name"},
				{ID: "account_number_masked", Label: "Account Number (masked if sensitive)"},
				{ID: "statement_period_start_end_dates", Label: "Statement Period (Start and End Dates)"},
				{ID: "transaction_date", Label: "Transaction Date"},
				{ID: "description_remarks", Label: "Description / Remarks"},
				{ID: "reference_utr_cheque_number", Label: "Reference / UTR / Cheque Number"},
				{ID: "debit_amount", Label: "Debit Amount"},
				{ID: "credit_amount", Label: "Credit Amount"},
				{ID: "closing_balance", Label: "Closing Balance"},
			},
		}},
	},
	{
		ID:    "receipt_general",
		Label: "Receipt",
		Icon:  domain.IconShoppingCart,
		Goals: []domain.Goal{{
			ID:    "extract_receipt_data",
			Label: "Extract Key Receipt Data",
			SuggestedFields: []domain.Field{
				{ID: "receipt_number", Label: "Receipt Number"},
				{ID: "payer_name", Label: "Payer Name"},
				{ID: "payee_name_company", Label: "Payee Name / Company"},
				{ID: "payment_date", Label: "Payment Date"},
				{ID: "amount_paid", Label: "Amount Paid"},
				{ID: "mode_of_payment", Label: "Mode of Payment (Cash, UPI, Bank Transfer, etc.)"},
				{ID: "reference_number_transaction_id", Label: "Reference Number / Transaction ID"},
				{ID: "tax_amount_breakdown", Label: "Tax Amount / Breakdown (if applicable)"},
			},
		}},
	},
	{
		ID:    "payment_proof_utr",
		Label: "Payment Proofs / UTR Confirmations",
		Icon:  domain.IconShieldCheck,
		Goals: []domain.Goal{{
			ID:    "extract_payment_proof_data",
			Label: "Extract Payment Proof Data",
			SuggestedFields: []domain.Field{
				{ID: "sender_name", Label: "Sender Name"},
				{ID: "receiver_name", Label: "Receiver Name"},
				{ID: "utr_number_transaction_id", Label: "UTR Number / Transaction ID"},
				{ID: "transaction_date_proof", Label: "Transaction Date"},
				{ID: "amount_proof", Label: "Amount"},
				{ID: "bank_names_from_to", Label: "Bank Names (From/To)"},
				{ID: "payment_mode_proof", Label: "Payment Mode"},
				{ID: "remarks_purpose_of_transfer", Label: "Remarks / Purpose of Transfer"},
			},
		}},
	},
	{
		ID:    "tax_statements_certificates",
		Label: "Tax Statements / TDS Certificates",
		Icon:  domain.IconFileBadge,
		Goals: []domain.Goal{{
			ID:    "extract_tax_statement_data",
			Label: "Extract Tax Statement Data",
			SuggestedFields: []domain.Field{
				{ID: "pan_number", Label: "PAN Number"},
				{ID: "tan_number", Label: "TAN Number"},
				{ID: "deductor_employer_name", Label: "Deductor/Employer Name"},
				{ID: "assessment_year", Label: "Assessment Year"},
				{ID: "income_head", Label: "Income Head"},
				{ID: "tds_amount", Label: "TDS Amount"},
				{ID: "tax_deposited_date", Label: "Tax Deposited Date"},
				{ID: "challan_number_tax_statement", Label: "Challan Number"},
				{ID: "salary_professional_fee_rent_paid", Label: "Salary / Professional Fee / Rent Paid (as applicable)"},
			},
		}},
	},
	{
		ID:    "salary_slips_payroll",
		Label: "Salary Slips / Payroll Reports",
		Icon:  domain.IconClipboardList,
		Goals: []domain.Goal{{
			ID:    "extract_payroll_data",
			Label: "Extract Payroll Data",
			SuggestedFields: []domain.Field{
				{ID: "employee_name", Label: "Employee Name"},
				{ID: "employee_id_pan", Label: "Employee ID / PAN"},
				{ID: "salary_period", Label: "Salary Period"},
				{ID: "gross_salary", Label: "Gross Salary"},
				{ID: "net_salary", Label: "Net Salary"},
				{ID: "deductions_pf_esi_tds", Label: "Deductions (PF, ESI, TDS)"},
				{ID: "allowances", Label: "Allowances"},
				{ID: "taxable_income", Label: "Taxable Income"},
				{ID: "employer_name_payroll", Label: "Employer Name"},
			},
		}},
	},
	{
		ID:    "purchase_order",
		Label: "Purchase Orders (POs)",
		Icon:  domain.IconShoppingBag,
		Goals: []domain.Goal{{
			ID:    "extract_po_data",
			Label: "Extract Purchase Order Data",
			SuggestedFields: []domain.Field{
				{ID: "po_number", Label: "PO Number"},
				{ID: "issuer_company_name", Label: "Issuer Company Name"},
				{ID: "vendor_name_po", Label: "Vendor Name"},
				{ID: "po_date", Label: "PO Date"},
				{ID: "item_list_quantity_rate", Label: "Item List with Quantity & Rate"},
				{ID: "total_value_po", Label: "Total Value"},
				{ID: "delivery_terms", Label: "Delivery Terms"},
				{ID: "gst_details_po", Label: "GST Details (if applicable)"},
			},
		}},
	},
	{
		ID:    "utility_rent_bills",
		Label: "Bills / Utility Bills / Rent Bills",
		Icon:  domain.IconFileDigit,
		Goals: []domain.Goal{{
			ID:    "extract_bill_data",
			Label: "Extract Bill Data",
			SuggestedFields: []domain.Field{
				{ID: "bill_number", Label: "Bill Number"},
				{ID: "vendor_service_provider_name", Label: "Vendor/Service Provider Name"},
				{ID: "billing_date", Label: "Billing Date"},
				{ID: "billing_period", Label: "Billing Period"},
				{ID: "amount_bill", Label: "Amount"},
				{ID: "service_description_bill", Label: "Service Description"},
				{ID: "tax_components_bill", Label: "Tax Components"},
				{ID: "consumer_account_number_bill", Label: "Consumer/Account Number"},
			},
		}},
	},
	{
		ID:    "audit_financial_reports",
		Label: "Audit Reports / Financial Statements",
		Icon:  domain.IconBookOpenCheck,
		Goals: []domain.Goal{{
			ID:    "extract_financial_report_data",
			Label: "Extract Financial Report Data",
			SuggestedFields: []domain.Field{
				{ID: "entity_name_report", Label: "Entity Name"},
				{ID: "financial_year_report", Label: "Financial Year"},
				{ID: "auditor_name_firm", Label: "Auditor Name & Firm"},
				{ID: "balance_sheet_date", Label: "Balance Sheet Date"},
				{ID: "revenue", Label: "Revenue"},
				{ID: "expenses", Label: "Expenses"},
				{ID: "profit_before_after_tax", Label: "Profit Before/After Tax"},
				{ID: "equity", Label: "Equity"},
				{ID: "assets", Label: "Assets"},
				{ID: "liabilities", Label: "Liabilities"},
				{ID: "remarks_notes_to_accounts", Label: "Remarks / Notes to Accounts"},
			},
		}},
	},
	{
		ID:    "tax_payment_challans",
		Label: "Challans (Tax Payment, PF, ESI, etc.)",
		Icon:  domain.IconFileCheck,
		Goals: []domain.Goal{{
			ID:    "extract_challan_data",
			Label: "Extract Challan Data",
			SuggestedFields: []domain.Field{
				{ID: "challan_number", Label: "Challan Number"},
				{ID: "date_of_payment_challan", Label: "Date of Payment"},
				{ID: "tax_type_gst_tds_advance", Label: "Tax Type (GST, TDS, Advance Tax)"},
				{ID: "amount_paid_challan", Label: "Amount Paid"},
				{ID: "bsr_code_cin", Label: "BSR Code / CIN"},
				{ID: "pan_tan_challan", Label: "PAN/TAN"},
				{ID: "assessment_year_challan", Label: "Assessment Year"},
				{ID: "period_covered_challan", Label: "Period Covered"},
			},
		}},
	},
	{
		ID:    "registration_certs_pan_gst",
		Label: "PAN / GST / Registration Certificates",
		Icon:  domain.IconBadgeCheck,
		Goals: []domain.Goal{{
			ID:    "extract_registration_cert_data",
			Label: "Extract Registration Certificate Data",
			SuggestedFields: []domain.Field{
				{ID: "entity_name_cert", Label: "Entity Name"},
				{ID: "pan_gstin_cert", Label: "PAN / GSTIN"},
				{ID: "registration_date_cert", Label: "Registration Date"},
				{ID: "type_of_business_cert", Label: "Type of Business"},
				{ID: "address_cert", Label: "Address"},
				{ID: "status_active_inactive_cert", Label: "Status (Active/Inactive)"},
			},
		}},
	},
	{
		ID:    "loan_statements_emi",
		Label: "Loan Statements / EMI Schedules",
		Icon:  domain.IconCalendarClock,
		Goals: []domain.Goal{{
			ID:    "extract_loan_data",
			Label: "Extract Loan Data",
			SuggestedFields: []domain.Field{
				{ID: "lender_name", Label: "Lender Name"},
				{ID: "borrower_name", Label: "Borrower Name"},
				{ID: "loan_account_number", Label: "Loan Account Number"},
				{ID: "disbursement_date", Label: "Disbursement Date"},
				{ID: "emi_amount", Label: "EMI Amount"},
				{ID: "interest_principal_split", Label: "Interest & Principal Split"},
				{ID: "due_dates_loan", Label: "Due Dates"},
				{ID: "outstanding_balance_loan", Label: "Outstanding Balance"},
			},
		}},
	},
	{
		ID:    "general_text_summary",
		Label: "General Text Document (Summary)",
		Icon:  domain.IconFileText,
		Goals: []domain.Goal{{
			ID:    "summarize_general_text",
			Label: "Summarize Text",
			SuggestedFields: []domain.Field{
				{ID: "key_points_summary", Label: "Key Points (concise)"},
				{ID: "main_ideas_summary", Label: "Main Ideas (bullet points)"},
				{ID: "overall_sentiment", Label: "Overall Sentiment (if applicable)"},
			},
		}},
	},
	{
		ID:    "general_text_extraction",
		Label: "General Text Document (Extraction)",
		Icon:  domain.IconFileSearch,
		Goals: []domain.Goal{{
			ID:    "extract_entities_general_text",
			Label: "Extract Named Entities",
			SuggestedFields: []domain.Field{
				{ID: "people_names", Label: "People Names"},
				{ID: "locations_places", Label: "Locations/Places"},
				{ID: "organizations_companies", Label: "Organizations/Companies"},
				{ID: "dates_times_mentioned", Label: "Dates/Times Mentioned"},
				{ID: "monetary_values", Label: "Monetary Values"},
			},
		}},
	},
	{
		ID:    "other",
		Label: "Other (Custom)",
		Icon:  domain.IconFilePlus,
		Goals: []domain.Goal{{
			ID:              "custom_task",
			Label:           "Define Custom Task",
			SuggestedFields: []domain.Field{},
		}},
	},
}

// builtinOutputFormats is the static list of supported output formats.
var builtinOutputFormats = []domain.OutputFormat{
	{ID: domain.FormatCSV, Label: "CSV (for Excel/Tally Import)", Icon: domain.IconSpreadsheet},
	{ID: domain.FormatList, Label: "Structured List (Key-Value Pairs)", Icon: domain.IconListOrdered},
	{ID: domain.FormatBullets, Label: "Bulleted Summary", Icon: domain.IconList},
}
