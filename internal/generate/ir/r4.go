package ir

// R4 returns the definitions of the FHIR R4 model of this module.
func R4() Definitions {
	return Definitions{
		Types:         r4Types,
		ResourceTypes: r4ResourceTypes,
		ValueSets:     r4ValueSets,
	}
}

var r4Types = []Type{
	{Name: "Base64Binary", Kind: KindPrimitive, Tag: "BASE64_BINARY", ValueType: "string",
		DocComment: "Base64Binary is a stream of bytes, base64 encoded."},
	{Name: "Boolean", Kind: KindPrimitive, Tag: "BOOLEAN", ValueType: "bool",
		DocComment: "Boolean is a value of true or false."},
	{Name: "Canonical", Kind: KindPrimitive, Tag: "CANONICAL", ValueType: "string",
		DocComment: "Canonical is a URI that refers to a resource by its canonical URL."},
	{Name: "Code", Kind: KindPrimitive, Tag: "CODE", ValueType: "string",
		DocComment: "Code is a string whose value is taken from a defined set of codes."},
	{Name: "Date", Kind: KindPrimitive, Tag: "DATE", ValueType: "string",
		DocComment: "Date is a date or a partial date (year or year and month)."},
	{Name: "DateTime", Kind: KindPrimitive, Tag: "DATE_TIME", ValueType: "string",
		DocComment: "DateTime is a date, date-time or partial date as used in human communication."},
	{Name: "Decimal", Kind: KindPrimitive, Tag: "DECIMAL", ValueType: "*apd.Decimal",
		DocComment: "Decimal is a rational number with implicit precision.\n\nThe value keeps the precision it was read with, \"1.50\" stays \"1.50\"."},
	{Name: "Id", Kind: KindPrimitive, Tag: "ID", ValueType: "string",
		DocComment: "Id is a logical id of up to 64 characters."},
	{Name: "Instant", Kind: KindPrimitive, Tag: "INSTANT", ValueType: "string",
		DocComment: "Instant is a point in time with at least second precision and a time zone."},
	{Name: "Integer", Kind: KindPrimitive, Tag: "INTEGER", ValueType: "int32",
		DocComment: "Integer is a signed 32-bit integer."},
	{Name: "Markdown", Kind: KindPrimitive, Tag: "MARKDOWN", ValueType: "string",
		DocComment: "Markdown is a string that may contain markdown syntax."},
	{Name: "Oid", Kind: KindPrimitive, Tag: "OID", ValueType: "string",
		DocComment: "Oid is an OID represented as a URI (urn:oid:1.2.3)."},
	{Name: "PositiveInt", Kind: KindPrimitive, Tag: "POSITIVE_INT", ValueType: "uint32",
		DocComment: "PositiveInt is an integer with a value that is positive (e.g. >0)."},
	{Name: "String", Kind: KindPrimitive, Tag: "STRING", ValueType: "string",
		DocComment: "String is a sequence of Unicode characters."},
	{Name: "Time", Kind: KindPrimitive, Tag: "TIME", ValueType: "string",
		DocComment: "Time is a time during the day, with no date specified."},
	{Name: "UnsignedInt", Kind: KindPrimitive, Tag: "UNSIGNED_INT", ValueType: "uint32",
		DocComment: "UnsignedInt is an integer with a value that is not negative (e.g. >= 0)."},
	{Name: "Uri", Kind: KindPrimitive, Tag: "URI", ValueType: "string",
		DocComment: "Uri is a Uniform Resource Identifier reference."},
	{Name: "Url", Kind: KindPrimitive, Tag: "URL", ValueType: "string",
		DocComment: "Url is a Uniform Resource Locator."},
	{Name: "Uuid", Kind: KindPrimitive, Tag: "UUID", ValueType: "string",
		DocComment: "Uuid is a UUID expressed as a URI (urn:uuid:...)."},

	{Name: "Address", Kind: KindDatatype, Tag: "ADDRESS"},
	{Name: "Age", Kind: KindDatatype, Tag: "AGE"},
	{Name: "Annotation", Kind: KindDatatype, Tag: "ANNOTATION"},
	{Name: "Attachment", Kind: KindDatatype, Tag: "ATTACHMENT"},
	{Name: "CodeableConcept", Kind: KindDatatype, Tag: "CODEABLE_CONCEPT"},
	{Name: "Coding", Kind: KindDatatype, Tag: "CODING"},
	{Name: "ContactDetail", Kind: KindDatatype, Tag: "CONTACT_DETAIL"},
	{Name: "ContactPoint", Kind: KindDatatype, Tag: "CONTACT_POINT"},
	{Name: "Count", Kind: KindDatatype, Tag: "COUNT"},
	{Name: "Distance", Kind: KindDatatype, Tag: "DISTANCE"},
	{Name: "Dosage", Kind: KindDatatype, Tag: "DOSAGE"},
	{Name: "Duration", Kind: KindDatatype, Tag: "DURATION"},
	{Name: "HumanName", Kind: KindDatatype, Tag: "HUMAN_NAME"},
	{Name: "Identifier", Kind: KindDatatype, Tag: "IDENTIFIER"},
	{Name: "Meta", Kind: KindDatatype, Tag: "META"},
	{Name: "Money", Kind: KindDatatype, Tag: "MONEY"},
	// Quantity precedes its profiles, it owns the "Quantity" suffix.
	{Name: "Quantity", Kind: KindDatatype, Tag: "QUANTITY"},
	{Name: "MoneyQuantity", Kind: KindDatatype, Tag: "MONEY_QUANTITY"},
	{Name: "SimpleQuantity", Kind: KindDatatype, Tag: "SIMPLE_QUANTITY"},
	{Name: "Period", Kind: KindDatatype, Tag: "PERIOD"},
	{Name: "Range", Kind: KindDatatype, Tag: "RANGE"},
	{Name: "Ratio", Kind: KindDatatype, Tag: "RATIO"},
	{Name: "Reference", Kind: KindDatatype, Tag: "REFERENCE"},
	{Name: "SampledData", Kind: KindDatatype, Tag: "SAMPLED_DATA"},
	{Name: "Signature", Kind: KindDatatype, Tag: "SIGNATURE"},
	{Name: "Timing", Kind: KindDatatype, Tag: "TIMING"},
	{Name: "UsageContext", Kind: KindDatatype, Tag: "USAGE_CONTEXT"},
	{Name: "Extension", Kind: KindDatatype},
	{Name: "Narrative", Kind: KindDatatype},

	{Name: "DosageDoseAndRate", Kind: KindBackboneElement},
	{Name: "TimingRepeat", Kind: KindBackboneElement},
	{Name: "PatientContact", Kind: KindBackboneElement},
	{Name: "PatientCommunication", Kind: KindBackboneElement},
	{Name: "PatientLink", Kind: KindBackboneElement},
	{Name: "ObservationReferenceRange", Kind: KindBackboneElement},
	{Name: "ObservationComponent", Kind: KindBackboneElement},
	{Name: "ConditionStage", Kind: KindBackboneElement},
	{Name: "ConditionEvidence", Kind: KindBackboneElement},
	{Name: "MedicationRequestDispenseRequest", Kind: KindBackboneElement},
	{Name: "MedicationRequestDispenseRequestInitialFill", Kind: KindBackboneElement},
	{Name: "MedicationRequestSubstitution", Kind: KindBackboneElement},

	{Name: "Patient", Kind: KindResource},
	{Name: "Observation", Kind: KindResource},
	{Name: "Condition", Kind: KindResource},
	{Name: "MedicationRequest", Kind: KindResource},
}

var r4ResourceTypes = []string{
	"Account", "ActivityDefinition", "AdverseEvent", "AllergyIntolerance", "Appointment",
	"AppointmentResponse", "AuditEvent", "Basic", "Binary", "BiologicallyDerivedProduct",
	"BodyStructure", "Bundle", "CapabilityStatement", "CarePlan", "CareTeam", "CatalogEntry",
	"ChargeItem", "ChargeItemDefinition", "Claim", "ClaimResponse", "ClinicalImpression",
	"CodeSystem", "Communication", "CommunicationRequest", "CompartmentDefinition", "Composition",
	"ConceptMap", "Condition", "Consent", "Contract", "Coverage", "CoverageEligibilityRequest",
	"CoverageEligibilityResponse", "DetectedIssue", "Device", "DeviceDefinition", "DeviceMetric",
	"DeviceRequest", "DeviceUseStatement", "DiagnosticReport", "DocumentManifest",
	"DocumentReference", "EffectEvidenceSynthesis", "Encounter", "Endpoint", "EnrollmentRequest",
	"EnrollmentResponse", "EpisodeOfCare", "EventDefinition", "Evidence", "EvidenceVariable",
	"ExampleScenario", "ExplanationOfBenefit", "FamilyMemberHistory", "Flag", "Goal",
	"GraphDefinition", "Group", "GuidanceResponse", "HealthcareService", "ImagingStudy",
	"Immunization", "ImmunizationEvaluation", "ImmunizationRecommendation", "ImplementationGuide",
	"InsurancePlan", "Invoice", "Library", "Linkage", "List", "Location", "Measure", "MeasureReport",
	"Media", "Medication", "MedicationAdministration", "MedicationDispense", "MedicationKnowledge",
	"MedicationRequest", "MedicationStatement", "MedicinalProduct", "MedicinalProductAuthorization",
	"MedicinalProductContraindication", "MedicinalProductIndication", "MedicinalProductIngredient",
	"MedicinalProductInteraction", "MedicinalProductManufactured", "MedicinalProductPackaged",
	"MedicinalProductPharmaceutical", "MedicinalProductUndesirableEffect", "MessageDefinition",
	"MessageHeader", "MolecularSequence", "NamingSystem", "NutritionOrder", "Observation",
	"ObservationDefinition", "OperationDefinition", "OperationOutcome", "Organization",
	"OrganizationAffiliation", "Parameters", "Patient", "PaymentNotice", "PaymentReconciliation",
	"Person", "PlanDefinition", "Practitioner", "PractitionerRole", "Procedure", "Provenance",
	"Questionnaire", "QuestionnaireResponse", "RelatedPerson", "RequestGroup", "ResearchDefinition",
	"ResearchElementDefinition", "ResearchStudy", "ResearchSubject", "RiskAssessment",
	"RiskEvidenceSynthesis", "Schedule", "SearchParameter", "ServiceRequest", "Slot", "Specimen",
	"SpecimenDefinition", "StructureDefinition", "StructureMap", "Subscription", "Substance",
	"SubstanceNucleicAcid", "SubstancePolymer", "SubstanceProtein", "SubstanceReferenceInformation",
	"SubstanceSourceMaterial", "SubstanceSpecification", "SupplyDelivery", "SupplyRequest", "Task",
	"TerminologyCapabilities", "TestReport", "TestScript", "ValueSet", "VerificationResult",
	"VisionPrescription",
}

var r4ValueSets = []ValueSet{
	{Name: "AddressType", Codes: []string{"postal", "physical", "both"}},
	{Name: "AddressUse", Codes: []string{"home", "work", "temp", "old", "billing"}},
	{Name: "AdministrativeGender", Codes: []string{"male", "female", "other", "unknown"}},
	{Name: "ConditionVerificationStatus", Codes: []string{"unconfirmed", "provisional", "differential", "confirmed", "refuted", "entered-in-error"}},
	{Name: "ContactPointSystem", Codes: []string{"phone", "fax", "email", "pager", "url", "sms", "other"}},
	{Name: "ContactPointUse", Codes: []string{"home", "work", "temp", "old", "mobile"}},
	{Name: "IdentifierUse", Codes: []string{"usual", "official", "temp", "secondary", "old"}},
	{Name: "LinkType", Codes: []string{"replaced-by", "replaces", "refer", "seealso"}},
	{Name: "MedicationRequestIntent", Codes: []string{"proposal", "plan", "order", "original-order", "reflex-order", "filler-order", "instance-order", "option"}},
	{Name: "MedicationRequestStatus", Codes: []string{"active", "on-hold", "cancelled", "completed", "entered-in-error", "stopped", "draft", "unknown"}},
	{Name: "NameUse", Codes: []string{"usual", "official", "temp", "nickname", "anonymous", "old", "maiden"}},
	{Name: "NarrativeStatus", Codes: []string{"generated", "extensions", "additional", "empty"}},
	{Name: "ObservationStatus", Codes: []string{"registered", "preliminary", "final", "amended", "corrected", "cancelled", "entered-in-error", "unknown"}},
	{Name: "QuantityComparator", Codes: []string{"<", "<=", ">=", ">"}},
	{Name: "UnitsOfTime", Codes: []string{"s", "min", "h", "d", "wk", "mo", "a"}},
}
