package knownissue

import (
	"fmt"

	"github.com/dkoosis/snipcheck/pkg/snippet"
)

// SDK issues
const (
	featureNotSupported = "Range composable functions are not supported by SDK\n" +
		"https://github.com/microsoftgraph/msgraph-sdk-dotnet/issues/490"
	searchHeaderNotSupported = "Search header is not supported by the SDK"
	countNotSupported        = "OData $count is not supported by the SDK at the moment"
	missingContentProperty   = "IReportRootGetM365AppPlatformUserCountsRequestBuilder is missing Content property"
)

// HTTP snippet issues
const (
	httpSnippetWrong   = "Http snippet should be fixed"
	refNeeded          = "URL needs to end with /$ref for reference types"
	refShouldBeRemoved = "URL shouldn't end with /$ref"
)

// Metadata issues
const (
	metadataWrong          = "Metadata should be fixed"
	identityRiskEvents     = "identityRiskEvents not defined in metadata."
	proposedNewTimeDropped = "Metadata preprocessing is dropping `ProposedNewTime`." +
		" See https://github.com/microsoftgraph/msgraph-metadata/issues/21"
)

// Snippet generation issues
const (
	snippetGenerationFlattens = "Snippet generation flattens the nested Odata queries." +
		" See https://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/287"
	snippetGenerationAdditionalData = "Open types should use additional data for non-existent properties." +
		" See https://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/296"
	snippetGenerationCreateAsync = "Snippet generation doesn't use CreateAsync" +
		" See https://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/301"
	snippetGenerationRequestObject = "Snippet generation should rename objects that end with Request to end with RequestObject" +
		" See https://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/298"
)

const (
	httpDelete = "DELETE"
	httpPut    = "PUT"
	httpPost   = "POST"
	httpGet    = "GET"
	httpPatch  = "PATCH"
)

func propertyNotFound(typ, property string) string {
	return httpSnippetWrong + fmt.Sprintf(": %s does not contain definition of %s in metadata", typ, property)
}

// containsTargetRemove describes a reference property wrongly marked ContainsTarget=true.
func containsTargetRemove(typ, property string) string {
	return metadataWrong + fmt.Sprintf(": %s->%s shouldn't have `ContainsTarget=true`", typ, property)
}

func casingWrong(wrong, correct string) string {
	return httpSnippetWrong + fmt.Sprintf(": %s should be renamed as %s", wrong, correct)
}

func methodWrong(docsMethod, expectedMethod string) string {
	return httpSnippetWrong + fmt.Sprintf(": Docs has HTTP method %s, it should be %s", docsMethod, expectedMethod)
}

// Default returns freshly built copies of the built-in tables.
func Default() Tables {
	return Tables{
		Language: map[snippet.Language][]Rule{
			snippet.CSharp: csharpRules(),
			snippet.Java:   javaRules(),
		},
		Shared: sharedRules(),
	}
}

// sharedRules returns issues rooted in docs content, service metadata or snippet generation; they recur in every language.
func sharedRules() []Rule {
	v1, beta := []snippet.Version{snippet.V1}, []snippet.Version{snippet.Beta}
	return []Rule{
		{
			Owner:    OwnerHTTP,
			Message:  "isFavoriteByDefault is only available in Beta. https://github.com/microsoftgraph/microsoft-graph-docs/issues/10145",
			Versions: v1,
			Snippets: []string{
				"convert-team-from-group",
				"convert-team-from-non-standard2",
			},
		},
		{
			Owner:    OwnerMetadata,
			Message:  "v1 metadata doesn't have endpointType for invitationParticipantInfo",
			Versions: v1,
			Snippets: []string{"call-transfer"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  "updateMetadata doesn't exist in metadata",
			Versions: beta,
			Snippets: []string{"call-updatemetadata"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("group", "acceptedSender"),
			Versions: beta,
			Snippets: []string{"create-acceptedsender"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("group", "rejectedSender"),
			Versions: v1,
			Snippets: []string{
				"create-acceptedsender",
				"create-rejectedsenders-from-group",
				"remove-rejectedsender-from-group",
			},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("printerShare", "allowedGroups"),
			Versions: beta,
			Snippets: []string{"create-allowedgroup-from-printers"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("printerShare", "allowedUsers"),
			Versions: beta,
			Snippets: []string{"create-alloweduser-from-printers"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  refNeeded,
			Versions: beta,
			Snippets: []string{
				"create-certificatebasedauthconfiguration-from-certificatebasedauthconfiguration",
				"create-directoryobject-from-orgcontact",
				"create-homerealmdiscoverypolicy-from-serviceprincipal",
				"create-tokenlifetimepolicy-from-application",
			},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("featureRolloutPolicy", "appliesTo"),
			Versions: beta,
			Snippets: []string{
				"create-directoryobject-from-featurerolloutpolicy",
				"delete-directoryobject-from-featurerolloutpolicy",
			},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("educationAssignment", "rubric"),
			Versions: beta,
			Snippets: []string{
				"create-educationrubric-from-educationassignment",
				"delete-educationrubric-from-educationassignment",
			},
		},
		{
			Owner:    OwnerHTTP,
			Message:  propertyNotFound("EducationSchool", "Status"),
			Versions: beta,
			Snippets: []string{"create-educationschool-from-educationroot"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("connectedOrganization", "externalSponsor"),
			Versions: beta,
			Snippets: []string{
				"create-externalsponsor-from-connectedorganization",
				"delete-externalsponsor-from-connectedorganization",
			},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("connectedOrganization", "internalSponsor"),
			Versions: beta,
			Snippets: []string{
				"create-internalsponsor-from-connectedorganization",
				"delete-internalsponsor-from-connectedorganization",
			},
		},
		{
			Owner:    OwnerHTTP,
			Message:  httpSnippetWrong + ": Item needs to be an OutlookItem object, not a string",
			Snippets: []string{"create-item-attachment-from-eventmessage"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  refShouldBeRemoved,
			Versions: beta,
			Snippets: []string{
				"create-onpremisesagentgroup-from-publishedresource",
				"delete-publishedresource",
				"removeonpremisesagentfromanonpremisesagentgroup",
			},
		},
		{
			Owner:    OwnerHTTP,
			Message:  propertyNotFound("ReferenceAttachment", "SourceUrl, ProviderType, Permission and IsFolder"),
			Versions: v1,
			Snippets: []string{"create-reference-attachment-with-post"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("group", "rejectedSender"),
			Versions: beta,
			Snippets: []string{
				"create-rejectedsender",
				"remove-group-from-rejectedsenderslist-of-group",
				"remove-user-from-rejectedsenderslist-of-group",
			},
		},
		{
			Owner:    OwnerHTTP,
			Message:  casingWrong("serviceprincipal", "servicePrincipal"),
			Versions: beta,
			Snippets: []string{
				"create-serviceprincipal-from-serviceprincipals",
				"list-serviceprincipal",
				"serviceprincipal-delete-owners",
			},
		},
		{
			Owner:    OwnerHTTP,
			Message:  httpSnippetWrong + ": Id should be string not int",
			Snippets: []string{"create-tablecolumn-from-table"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  "name should be displayName on teamsTab objects",
			Versions: beta,
			Snippets: []string{"create-team-post-full-payload"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("group", "acceptedSender"),
			Versions: v1,
			Snippets: []string{"delete-acceptedsenders-from-group"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  containsTargetRemove("printer", "allowedUsers"),
			Versions: beta,
			Snippets: []string{"delete-alloweduser"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  "HTTP sample needs to remove `root` from the URL",
			Versions: beta,
			Snippets: []string{"delete-permission"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  "Delta is not defined on directoryObject, but on user and group",
			Versions: beta,
			Snippets: []string{"directoryobject-delta"},
		},
		{
			Owner:    OwnerMetadataPreprocessing,
			Message:  proposedNewTimeDropped,
			Versions: beta,
			Snippets: []string{
				"event-decline",
				"event-tentativelyaccept",
			},
		},
		{
			Owner:    OwnerHTTP,
			Message:  "This is only available in Beta",
			Versions: v1,
			Snippets: []string{
				"get-endpoint",
				"get-endpoints",
			},
		},
		{
			Owner:    OwnerHTTP,
			Message:  identityRiskEvents,
			Versions: beta,
			Snippets: []string{
				"get-identityriskevent",
				"get-identityriskevents",
			},
		},
		{
			Owner:    OwnerMetadata,
			Message:  "Oauth2PermissionGrants are not defined for user",
			Versions: beta,
			Snippets: []string{"get-user-oauth2permissiongrants"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  httpSnippetWrong + "Me doesn't have \"Chats\". \"Chats\" is a high level EntitySet.",
			Versions: v1,
			Snippets: []string{"list-conversation-members"},
		},
		{
			Owner:    OwnerHTTPMethodWrong,
			Message:  methodWrong(httpPost, httpGet),
			Versions: beta,
			Snippets: []string{
				"nameditem-range",
				"printer-getcapabilities",
				"table-databodyrange",
				"table-headerrowrange",
				"table-totalrowrange",
				"tablecolumn-databodyrange",
				"tablecolumn-headerrowrange",
				"tablecolumn-range",
				"tablecolumn-totalrowrange",
				"tablerow-range",
				"worksheet-range",
			},
		},
		{
			Owner:    OwnerMetadata,
			Message:  "ConfigureMixer doesn't exist in metadata",
			Versions: beta,
			Snippets: []string{"participant-configuremixer"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  httpSnippetWrong + ": A list of SecureScoreControlStateUpdate objects should be provided instead of placeholder string.",
			Versions: beta,
			Snippets: []string{"securescorecontrolprofiles-update"},
		},
		{
			Owner:    OwnerHTTPMethodWrong,
			Message:  methodWrong(httpPut, httpPatch),
			Versions: beta,
			Snippets: []string{
				"shift-put",
				"update-b2cuserflows-identityprovider",
				"update-b2xuserflows-identityprovider",
			},
		},
		{
			Owner:    OwnerHTTPMethodWrong,
			Message:  methodWrong(httpDelete, httpPost),
			Versions: beta,
			Snippets: []string{"unfollow-item"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  propertyNotFound("ActivityBasedTimeoutPolicy", "Type"),
			Snippets: []string{"update-activitybasedtimeoutpolicy"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  propertyNotFound("ClaimsMappingPolicy", "Type"),
			Snippets: []string{"update-claimsmappingpolicy"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  propertyNotFound("HomeRealmDiscoveryPolicy", "Type"),
			Snippets: []string{"update-homerealmdiscoverypolicy"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  "OpenIdConnectProvider should be specified",
			Versions: beta,
			Snippets: []string{"update-openidconnectprovider"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  httpSnippetWrong + ": Capacity should be int, isWheelchairAccessible should be renamed as isWheelChairAccessible",
			Snippets: []string{"update-room"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  "teamsApp needs hasStream=true. In addition to that, we need these fixed: \nhttps://github.com/microsoftgraph/msgraph-sdk-dotnet-core/issues/160 \nhttps://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/336",
			Versions: v1,
			Snippets: []string{"update-teamsapp"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  propertyNotFound("TokenIssuancePolicy", "Type"),
			Snippets: []string{"update-tokenissuancepolicy"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  propertyNotFound("TokenLifetimePolicy", "Type"),
			Snippets: []string{"update-tokenlifetimepolicy"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  httpSnippetWrong + ": workforceintegration id is needed in the url.",
			Snippets: []string{"update-workforceintegration"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  "Delta function is not declared",
			Versions: v1,
			Snippets: []string{"get-channel-messages-delta-1"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  snippetGenerationRequestObject,
			Versions: beta,
			Snippets: []string{"post-privilegedroleassignmentrequest"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Snippet Generation needs casting support for *CollectionWithReferencesPage. See details at: https://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/327",
			Versions: beta,
			Snippets: []string{"create-b2cuserflow-from-b2cuserflows-identityprovider"},
		},
		{
			Owner:    OwnerSDK,
			Message:  "Missing method",
			Versions: beta,
			Snippets: []string{"create-connector-from-connectorgroup"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  "HasStream missing",
			Versions: beta,
			Snippets: []string{"get-document-value"},
		},
	}
}

// csharpRules returns C# SDK and snippet generation issues.
func csharpRules() []Rule {
	v1, beta := []snippet.Version{snippet.V1}, []snippet.Version{snippet.Beta}
	return []Rule{
		{
			Owner:    OwnerSnippetGeneration,
			Message:  snippetGenerationAdditionalData,
			Versions: beta,
			Snippets: []string{"call-transfer"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Snippet Generation needs casting support for *CollectionWithReferencesPage. See details at: https://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/327",
			Versions: beta,
			Snippets: []string{"create-b2xuserflow-from-b2xuserflows-identityproviders"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  snippetGenerationCreateAsync,
			Versions: beta,
			Snippets: []string{
				"create-externalitem-from-connections",
				"create-schema-from-connection-async",
				"put-privilegedrolesettings",
				"put-regionalandlanguagesettings",
				"team-put-schedule",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  featureNotSupported,
			Snippets: []string{
				"create-rangeborder-from-rangeformat",
				"get-borders",
				"get-formatprotection",
				"get-rangeborder",
				"get-rangebordercollection",
				"get-rangefill",
				"get-rangefont",
				"get-rangeformat",
				"get-rows",
				"range-clear",
				"range-delete",
				"range-entirecolumn",
				"range-entirerow",
				"range-insert",
				"range-lastcell",
				"range-lastcolumn",
				"range-lastrow",
				"range-merge",
				"range-unmerge",
				"range-usedrange",
				"rangefill-clear",
				"rangeformat-autofitcolumns",
				"rangeformat-autofitrows",
				"rangesort-apply",
				"update-formatprotection",
				"update-rangeborder",
				"update-rangefill",
				"update-rangefont",
				"update-rangeformat",
				"update-rangeformat-fill",
				"update-rangeformat-fill-three",
				"update-rangeformat-fill-two",
				"update-rangeformat-font",
				"update-rangeformat-font-three",
				"update-rangeformat-font-two",
				"update-rangeformat-three",
				"update-rangeformat-two",
				"workbookrange-columnsafter",
				"workbookrange-columnsbefore",
				"workbookrange-rowsabove",
				"workbookrange-rowsbelow",
				"workbookrange-visibleview",
				"workbookrangeview-range",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  "SDK doesn't convert actions defined on collections to methods. https://github.com/microsoftgraph/MSGraph-SDK-Code-Generator/issues/250",
			Snippets: []string{
				"follow-site",
				"unfollow-site",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  countNotSupported,
			Versions: v1,
			Snippets: []string{"get-android-count"},
		},
		{
			Owner:    OwnerSDK,
			Message:  countNotSupported,
			Snippets: []string{
				"get-count-group-only",
				"get-count-only",
				"get-count-user-only",
				"get-group-transitivemembers-count",
				"get-user-memberof-count-only",
			},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  snippetGenerationFlattens,
			Snippets: []string{
				"get-opentypeextension-3",
				"get-singlevaluelegacyextendedproperty-1",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  searchHeaderNotSupported,
			Snippets: []string{
				"get-phone-count",
				"get-pr-count",
				"get-team-count",
				"get-tier-count",
				"get-wa-count",
				"get-web-count",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  "SDK doesn't generate type segment in OData URL. https://microsoftgraph.visualstudio.com/Graph%20Developer%20Experiences/_workitems/edit/4997",
			Snippets: []string{"get-rooms-in-roomlist"},
		},
		{
			Owner:    OwnerSDK,
			Message:  searchHeaderNotSupported,
			Versions: beta,
			Snippets: []string{"get-video-count"},
		},
		{
			Owner:    OwnerSDK,
			Message:  featureNotSupported,
			Versions: v1,
			Snippets: []string{
				"range-cell",
				"range-column",
				"range-usedrange-valuesonly",
				"workbookrange-rowsabove-nocount",
				"workbookrange-rowsbelow-nocount",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  missingContentProperty,
			Versions: beta,
			Snippets: []string{
				"reportroot-getm365appplatformusercounts-csv",
				"reportroot-getm365appplatformusercounts-json",
				"reportroot-getm365appusercoundetail",
				"reportroot-getm365appusercountdetail",
				"reportroot-getm365appusercounts-csv",
				"reportroot-getm365appusercounts-json",
			},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "See issue: https://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/288",
			Snippets: []string{"update-page"},
		},
		{
			Owner:    OwnerHTTPMethodWrong,
			Message:  methodWrong(httpPut, httpPatch),
			Snippets: []string{
				"schedule-put-schedulinggroups",
				"timeoff-put",
				"timeoffreason-put",
			},
		},
		{
			Owner:    OwnerHTTP,
			Message:  httpSnippetWrong + ": Odata.Type for concrete Attachment type should be added",
			Snippets: []string{"post-reply"},
		},
		{
			Owner:    OwnerHTTPMethodWrong,
			Message:  methodWrong(httpPut, httpPatch),
			Versions: beta,
			Snippets: []string{
				"shift-get",
				"update-openshift",
				"update-phoneauthenticationmethod",
				"update-synchronizationschema",
				"update-synchronizationtemplate",
				"update-trustframeworkkeyset",
			},
		},
	}
}

// javaRules returns Java SDK and snippet generation issues.
func javaRules() []Rule {
	v1, beta := []snippet.Version{snippet.V1}, []snippet.Version{snippet.Beta}
	return []Rule{
		{
			Owner:    OwnerSDK,
			Message:  featureNotSupported,
			Versions: v1,
			Snippets: []string{
				"range-cell",
				"range-usedrange-valuesonly",
				"workbookrange-rowsabove-nocount",
				"workbookrange-rowsbelow-nocount",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  featureNotSupported,
			Snippets: []string{
				"get-rows",
				"range-clear",
				"range-column",
				"range-delete",
				"range-entirecolumn",
				"range-entirerow",
				"range-insert",
				"range-lastcell",
				"range-lastcolumn",
				"range-lastrow",
				"range-merge",
				"range-unmerge",
				"range-usedrange",
				"workbookrange-columnsafter",
				"workbookrange-columnsbefore",
				"workbookrange-rowsabove",
				"workbookrange-rowsbelow",
				"workbookrange-visibleview",
				"workbookrangeview-range",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  "SDK doesn't convert actions defined on collections to methods. https://github.com/microsoftgraph/MSGraph-SDK-Code-Generator/issues/250",
			Snippets: []string{
				"follow-site",
				"unfollow-site",
			},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "See issue: https://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/288",
			Snippets: []string{"update-page"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  snippetGenerationFlattens,
			Snippets: []string{
				"get-opentypeextension-3",
				"get-singlevaluelegacyextendedproperty-1",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  "SDK doesn't generate type segment in OData URL. https://microsoftgraph.visualstudio.com/Graph%20Developer%20Experiences/_workitems/edit/4997",
			Snippets: []string{"get-rooms-in-roomlist"},
		},
		{
			Owner:    OwnerSDK,
			Message:  "Path had wrong casing in SDK due to an error in the metadata",
			Snippets: []string{
				"get-alert",
				"get-alerts",
				"get-securescore",
				"get-securescorecontrolprofile",
				"get-securescorecontrolprofiles",
				"get-securescores",
				"update-alert",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  "Path had wrong casing in SDK due to an error in the metadata",
			Versions: beta,
			Snippets: []string{
				"create-securityaction-from-security",
				"create-tiindicator-from-security",
				"delete-tiindicator",
				"get-securityaction",
				"get-securityactions",
				"get-tiindicator",
				"get-tiindicators",
				"securescorecontrolprofiles-list",
				"securescores-list",
				"securityaction-cancelsecurityaction",
				"tiindicator-deletetiindicators",
				"tiindicator-deletetiindicatorsbyexternalid",
				"tiindicator-submittiindicators",
				"tiindicator-updatetiindicators",
				"update-tiindicator",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  "Missing method in SDK generation https://github.com/microsoftgraph/MSGraph-SDK-Code-Generator/issues/317",
			Snippets: []string{
				"device-checkmemberobjects",
				"group-checkmembergroups",
				"group-checkmemberobjects",
				"group-getmembergroups",
				"group-getmemberobjects",
				"offershiftrequest-approve",
				"offershiftrequest-decline",
				"orgcontact-checkmembergroups",
				"orgcontact-getmembergroups",
				"orgcontact-getmemberobjects",
				"serviceprincipal-checkmembergroups",
				"serviceprincipal-checkmemberobjects",
				"serviceprincipal-getmembergroups",
				"serviceprincipal-getmemberobjects",
				"swapshiftchangerequest-approve",
				"swapshiftchangerequest-decline",
				"timeoffrequest-approve",
				"timeoffrequest-decline",
				"user-checkmembergroups",
				"user-checkmemberobjects",
				"user-getmembergroups",
				"user-getmemberobjects",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  "Missing method in SDK generation https://github.com/microsoftgraph/MSGraph-SDK-Code-Generator/issues/318",
			Snippets: []string{
				"get-group-transitivemembers-count",
				"get-user-memberof-count-only",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  "Missing method in SDK generation https://github.com/microsoftgraph/MSGraph-SDK-Code-Generator/issues/317",
			Versions: beta,
			Snippets: []string{
				"directoryobject-checkmembergroups",
				"directoryobject-getmembergroups",
				"directoryobject-getmemberobjects",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  "Missing method in SDK generation https://github.com/microsoftgraph/MSGraph-SDK-Code-Generator/issues/318",
			Versions: beta,
			Snippets: []string{
				"passwordauthenticationmethod-resetpassword-adminprovided",
				"passwordauthenticationmethod-resetpassword-systemgenerated",
				"phoneauthenticationmethod-disablesmssignin",
				"phoneauthenticationmethod-enablesmssignin",
				"user-upgrade-teamsapp",
			},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Missing support for odata cast https://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/361",
			Snippets: []string{
				"get-all-roomlists",
				"get-all-rooms",
				"get-count-group-only",
				"get-count-only",
				"get-count-user-only",
				"get-deleteditems",
				"get-pr-count",
				"get-tier-count",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  "Missing property",
			Versions: beta,
			Snippets: []string{"update-accesspackageassignmentpolicy"},
		},
		{
			Owner:    OwnerSDK,
			Message:  "Missing method",
			Versions: beta,
			Snippets: []string{"reportroot-getcredentialusagesummary"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Duplicated variable name",
			Snippets: []string{"create-list"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Should be in additional data manager",
			Snippets: []string{
				"create-listitem",
				"update-listitem",
				"update-plannerassignedtotaskboardtaskformat",
				"update-plannerplandetails",
			},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Conflicting Graph and Java type",
			Snippets: []string{
				"create-or-get-onlinemeeting",
				"schedule-share",
			},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Issue with Size argument",
			Snippets: []string{
				"get-one-thumbnail",
				"get-thumbnail-content",
			},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Missing quotes around query string parameter argument?",
			Snippets: []string{"user-supportedtimezones-iana"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Enums are not generated properly",
			Versions: beta,
			Snippets: []string{"alert-updatealerts"},
		},
		{
			Owner:    OwnerMetadata,
			Message:  "Delta function is not declared",
			Snippets: []string{
				"get-channel-messages-delta-2",
				"get-channel-messages-delta-3",
			},
		},
		{
			Owner:    OwnerHTTPMethodWrong,
			Message:  methodWrong(httpPut, httpPatch),
			Versions: v1,
			Snippets: []string{"shift-put"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Missing support for content: https://github.com/microsoftgraph/microsoft-graph-explorer-api/issues/371",
			Snippets: []string{"upload-via-put-id"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Parameters with null values are not accounted for as action parameters",
			Versions: beta,
			Snippets: []string{"create-printer"},
		},
		{
			Owner:    OwnerTestGeneration,
			Message:  "Imports need to be deduplicated for namespaces",
			Versions: beta,
			Snippets: []string{
				"create-term-from-",
				"get-group",
				"get-relation",
				"get-set",
				"get-store",
				"get-term",
				"update-set",
				"update-store",
				"update-term",
			},
		},
		{
			Owner:    OwnerSDK,
			Message:  snippetGenerationRequestObject,
			Versions: beta,
			Snippets: []string{
				"create-accesspackageassignmentrequest-from-accesspackageassignmentrequests",
				"create-accesspackageresourcerequest-from-accesspackageresourcerequests",
				"get-accesspackageassignmentrequest",
				"governanceroleassignmentrequest-post",
			},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Lossy conversion",
			Versions: beta,
			Snippets: []string{
				"update-connector",
				"update-educationpointsoutcome",
				"update-printer",
			},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Reserved keyword usage",
			Versions: beta,
			Snippets: []string{"educationsubmission-return"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Tries to instantiate a primite??",
			Versions: beta,
			Snippets: []string{"tablecolumncollection-add"},
		},
		{
			Owner:    OwnerSnippetGeneration,
			Message:  "Double Quotes not escaped",
			Versions: beta,
			Snippets: []string{"group-evaluatedynamicmembership"},
		},
		{
			Owner:    OwnerTestGeneration,
			Message:  "Code truncated???",
			Versions: beta,
			Snippets: []string{"create-educationrubric-from-educationuser"},
		},
		{
			Owner:    OwnerHTTP,
			Message:  httpSnippetWrong + ": A list of SecureScoreControlStateUpdate objects should be provided instead of placeholder string.",
			Versions: v1,
			Snippets: []string{"securescorecontrolprofiles-update"},
		},
	}
}
